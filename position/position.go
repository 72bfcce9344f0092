package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
	// ErrInvalidSquare represents an out-of-range square coordinate error.
	ErrInvalidSquare = errors.New("invalid square")
)

// Pos addresses a single square as rank*8+file, a1=0 through h8=63.
type Pos int8

const (
	FileA Pos = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Pos = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Home squares referenced by castling bookkeeping.
const (
	A1 Pos = 0
	B1 Pos = 1
	C1 Pos = 2
	D1 Pos = 3
	E1 Pos = 4
	F1 Pos = 5
	G1 Pos = 6
	H1 Pos = 7
	A8 Pos = 56
	B8 Pos = 57
	C8 Pos = 58
	D8 Pos = 59
	E8 Pos = 60
	F8 Pos = 61
	G8 Pos = 62
	H8 Pos = 63
)

// NewPos builds a Pos from file and rank components,
// rejecting out-of-range coordinates.
func NewPos(x, y Pos) (Pos, error) {
	if x < 0 || MaxComponentScalar <= x || y < 0 || MaxComponentScalar <= y {
		return 0, ErrInvalidSquare
	}
	return MaxComponentScalar*y + x, nil
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return 0, err
	}
	return MaxComponentScalar*y + x, nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return string(rune('a'+p.X())) + string(rune('1'+p.Y()))
}

// Valid reports whether p addresses a square on the board.
func (p Pos) Valid() bool {
	return 0 <= p && p < MaxComponentScalar*MaxComponentScalar
}

func (p Pos) X() Pos {
	return p % MaxComponentScalar
}

func (p Pos) Y() Pos {
	return p / MaxComponentScalar
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	pX := Pos(x - 'a')
	if pX < 0 || MaxComponentScalar <= pX {
		return 0, ErrInvalidNotation
	}
	return pX, nil
}

func notationToY(y byte) (Pos, error) {
	pY := Pos(y-'0') - 1
	if pY < 0 || MaxComponentScalar <= pY {
		return 0, ErrInvalidNotation
	}
	return pY, nil
}

func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentY() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('0' + p + 1))
}
