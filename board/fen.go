package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Sankalpingle/ChessGame/position"
)

func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	*b = Board{enPassantPos: flagNoEnPassant}
	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	var kings [2 + 1]int
	for y := position.Pos(0); y < Height; y++ {
		ptrX, ptrY := -1, Height-y-1
		for x := position.Pos(0); x < Width; x++ {
			ptrX++
			if ptrX >= len(rows[ptrY]) {
				return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			var s Side
			var p Piece
			switch cell := rune(rows[ptrY][ptrX]); cell {
			case 'P':
				s, p = SideWhite, PiecePawn
			case 'B':
				s, p = SideWhite, PieceBishop
			case 'N':
				s, p = SideWhite, PieceKnight
			case 'R':
				s, p = SideWhite, PieceRook
			case 'Q':
				s, p = SideWhite, PieceQueen
			case 'K':
				s, p = SideWhite, PieceKing
			case 'p':
				s, p = SideBlack, PiecePawn
			case 'b':
				s, p = SideBlack, PieceBishop
			case 'n':
				s, p = SideBlack, PieceKnight
			case 'r':
				s, p = SideBlack, PieceRook
			case 'q':
				s, p = SideBlack, PieceQueen
			case 'k':
				s, p = SideBlack, PieceKing
			default:
				if cell != '0' && unicode.IsDigit(cell) {
					skip := position.Pos(cell - '0')
					if skip != 0 && x+skip-1 < Width {
						x += skip - 1
						continue
					}
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			b.cells[y*Width+x] = Placement{Piece: p, Side: s}
			if p == PieceKing {
				kings[s]++
			}
		}
	}
	if kings[SideWhite] == 0 || kings[SideBlack] == 0 {
		return fmt.Errorf("%w: king missing", ErrInvalidFEN)
	}

	switch segments[1] {
	case "w":
		b.turn = SideWhite
	case "b":
		b.turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
crLoop:
	for i, e := range segments[2] {
		switch e {
		case 'K':
			b.castleRights.Set(CastleDirectionWhiteRight, true)
		case 'k':
			b.castleRights.Set(CastleDirectionBlackRight, true)
		case 'Q':
			b.castleRights.Set(CastleDirectionWhiteLeft, true)
		case 'q':
			b.castleRights.Set(CastleDirectionBlackLeft, true)
		default:
			if i == 0 && e == '-' {
				break crLoop
			}
			return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		if y := pos.Y(); y != position.Rank3 && y != position.Rank6 {
			return fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
		b.enPassantPos = pos
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	b.halfMoveClock = halfMoveClock

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	b.fullMoveClock = fullMoveClock

	return nil
}

func (b *Board) FEN() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		var skip uint8
		for x := position.Pos(0); x < Width; x++ {
			pl := b.cells[y*Width+x]
			if pl.IsEmpty() {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
				skip = 0
			}
			_, _ = builder.WriteString(pl.Piece.SymbolFEN(pl.Side))
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune(skip + '0'))
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	if b.castleRights == 0 {
		_, _ = builder.WriteRune('-')
	} else {
		if b.castleRights.IsAllowed(CastleDirectionWhiteRight) {
			_, _ = builder.WriteRune('K')
		}
		if b.castleRights.IsAllowed(CastleDirectionWhiteLeft) {
			_, _ = builder.WriteRune('Q')
		}
		if b.castleRights.IsAllowed(CastleDirectionBlackRight) {
			_, _ = builder.WriteRune('k')
		}
		if b.castleRights.IsAllowed(CastleDirectionBlackLeft) {
			_, _ = builder.WriteRune('q')
		}
	}
	_, _ = builder.WriteRune(' ')

	if b.enPassantPos == flagNoEnPassant {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(b.enPassantPos.Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String()
}
