package board

import "github.com/Sankalpingle/ChessGame/position"

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forward is the rank delta a pawn of this side advances by.
func (s Side) Forward() position.Pos {
	switch s {
	case SideWhite:
		return 1
	case SideBlack:
		return -1
	default:
		return 0
	}
}

// PawnStartRank is the rank pawns of this side start on,
// from which a two-square push is allowed.
func (s Side) PawnStartRank() position.Pos {
	if s == SideWhite {
		return position.Rank2
	}
	return position.Rank7
}

// PromotionRank is the far rank on which pawns of this side promote.
func (s Side) PromotionRank() position.Pos {
	if s == SideWhite {
		return position.Rank8
	}
	return position.Rank1
}
