package board

// delta is a (file, rank) step used by the offset and ray scans.
type delta struct {
	dx, dy int8
}

var (
	deltasLateral = [4]delta{
		{dx: 1, dy: 0},
		{dx: -1, dy: 0},
		{dx: 0, dy: 1},
		{dx: 0, dy: -1},
	}
	deltasDiagonal = [4]delta{
		{dx: 1, dy: 1},
		{dx: 1, dy: -1},
		{dx: -1, dy: 1},
		{dx: -1, dy: -1},
	}
	deltasKnight = [8]delta{
		{dx: 1, dy: 2},
		{dx: 2, dy: 1},
		{dx: 2, dy: -1},
		{dx: 1, dy: -2},
		{dx: -1, dy: -2},
		{dx: -2, dy: -1},
		{dx: -2, dy: 1},
		{dx: -1, dy: 2},
	}
	deltasKing = [8]delta{
		{dx: 0, dy: 1},
		{dx: 1, dy: 1},
		{dx: 1, dy: 0},
		{dx: 1, dy: -1},
		{dx: 0, dy: -1},
		{dx: -1, dy: -1},
		{dx: -1, dy: 0},
		{dx: -1, dy: 1},
	}
)

// rayDeltas returns the direction set a sliding piece moves along,
// or nil for non-sliders.
func rayDeltas(p Piece) []delta {
	switch p {
	case PieceRook:
		return deltasLateral[:]
	case PieceBishop:
		return deltasDiagonal[:]
	case PieceQueen:
		ds := make([]delta, 0, 8)
		ds = append(ds, deltasLateral[:]...)
		ds = append(ds, deltasDiagonal[:]...)
		return ds
	default:
		return nil
	}
}
