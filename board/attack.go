package board

import "github.com/Sankalpingle/ChessGame/position"

// IsSquareAttacked reports whether any piece of bySide could reach the
// given square in one pseudo-legal step. Attack probing never recurses
// into legality, so it is safe to call from the legality filter itself.
func (b *Board) IsSquareAttacked(target position.Pos, bySide Side) bool {
	if !target.Valid() {
		return false
	}

	// pawn diagonals, probed backwards from the target
	back := int8(-bySide.Forward())
	for _, dx := range [2]int8{-1, 1} {
		if from, ok := offset(target, delta{dx: dx, dy: back}); ok && b.cells[from].Is(PiecePawn, bySide) {
			return true
		}
	}

	for _, d := range deltasKnight {
		if from, ok := offset(target, d); ok && b.cells[from].Is(PieceKnight, bySide) {
			return true
		}
	}

	for _, d := range deltasKing {
		if from, ok := offset(target, d); ok && b.cells[from].Is(PieceKing, bySide) {
			return true
		}
	}

	if b.rayAttacked(target, bySide, deltasLateral[:], PieceRook) {
		return true
	}
	return b.rayAttacked(target, bySide, deltasDiagonal[:], PieceBishop)
}

// rayAttacked scans each direction until the first occupied square,
// which attacks only if it holds a bySide slider of the matching type
// or a queen.
func (b *Board) rayAttacked(target position.Pos, bySide Side, ds []delta, slider Piece) bool {
	for _, d := range ds {
		pos, ok := offset(target, d)
		for ok {
			pl := b.cells[pos]
			if !pl.IsEmpty() {
				if pl.Side == bySide && (pl.Piece == slider || pl.Piece == PieceQueen) {
					return true
				}
				break
			}
			pos, ok = offset(pos, d)
		}
	}
	return false
}
