package board

import "github.com/Sankalpingle/ChessGame/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

func (d CastleDirection) Side() Side {
	if d == CastleDirectionUnknown {
		return SideUnknown
	}
	if d.IsWhite() {
		return SideWhite
	}
	return SideBlack
}

// CastleRights packs the four king/rook-pair rights into one bitmask.
// A right being set means neither the king nor that corner's rook has
// ever left its home square; it never gets set again once cleared.
type CastleRights uint8

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteLeft]|maskCastleRights[CastleDirectionWhiteRight]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackLeft]|maskCastleRights[CastleDirectionBlackRight]) != 0
}

// castleTrack describes the fixed geometry of one castling direction.
type castleTrack struct {
	kingFrom, kingTo position.Pos
	rookFrom, rookTo position.Pos
	// empty lists every square strictly between king and rook.
	empty []position.Pos
	// safe lists the king's start, transit, and destination squares,
	// none of which may be attacked by the opponent.
	safe []position.Pos
}

var (
	maskCastleRights = [4 + 1]CastleRights{
		CastleDirectionWhiteRight: 0b1000,
		CastleDirectionWhiteLeft:  0b0100,
		CastleDirectionBlackRight: 0b0010,
		CastleDirectionBlackLeft:  0b0001,
	}

	castleTracks = [4 + 1]castleTrack{
		CastleDirectionWhiteRight: {
			kingFrom: position.E1, kingTo: position.G1,
			rookFrom: position.H1, rookTo: position.F1,
			empty: []position.Pos{position.F1, position.G1},
			safe:  []position.Pos{position.E1, position.F1, position.G1},
		},
		CastleDirectionWhiteLeft: {
			kingFrom: position.E1, kingTo: position.C1,
			rookFrom: position.A1, rookTo: position.D1,
			empty: []position.Pos{position.B1, position.C1, position.D1},
			safe:  []position.Pos{position.E1, position.D1, position.C1},
		},
		CastleDirectionBlackRight: {
			kingFrom: position.E8, kingTo: position.G8,
			rookFrom: position.H8, rookTo: position.F8,
			empty: []position.Pos{position.F8, position.G8},
			safe:  []position.Pos{position.E8, position.F8, position.G8},
		},
		CastleDirectionBlackLeft: {
			kingFrom: position.E8, kingTo: position.C8,
			rookFrom: position.A8, rookTo: position.D8,
			empty: []position.Pos{position.B8, position.C8, position.D8},
			safe:  []position.Pos{position.E8, position.D8, position.C8},
		},
	}

	// rightByRookHome maps a rook home corner to the right it anchors.
	rightByRookHome = map[position.Pos]CastleDirection{
		position.H1: CastleDirectionWhiteRight,
		position.A1: CastleDirectionWhiteLeft,
		position.H8: CastleDirectionBlackRight,
		position.A8: CastleDirectionBlackLeft,
	}
)

func castleDirectionsFor(s Side) [2]CastleDirection {
	if s == SideWhite {
		return [2]CastleDirection{CastleDirectionWhiteRight, CastleDirectionWhiteLeft}
	}
	return [2]CastleDirection{CastleDirectionBlackRight, CastleDirectionBlackLeft}
}
