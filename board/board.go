package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/Sankalpingle/ChessGame/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

const flagNoEnPassant position.Pos = -1

// Board holds one position: the cell grid plus side to move, castling
// rights, and the en-passant target. The grid is a plain value array so
// cloning for legality simulation is a shallow struct copy.
type Board struct {
	cells [TotalCells]Placement

	enPassantPos  position.Pos
	castleRights  CastleRights
	halfMoveClock uint64
	fullMoveClock uint64
	turn          Side
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

func NewBoard(opts ...BoardOption) (*Board, Side, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	b := &Board{}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, SideUnknown, err
	}
	return b, b.turn, nil
}

func (b *Board) Turn() Side {
	return b.turn
}

// PieceAt returns the content of the given cell; the zero Placement
// means the cell is empty.
func (b *Board) PieceAt(pos position.Pos) (Placement, error) {
	if !pos.Valid() {
		return Placement{}, position.ErrInvalidSquare
	}
	return b.cells[pos], nil
}

// EnPassantTarget returns the current en-passant landing square,
// valid only for the move immediately following a double pawn push.
func (b *Board) EnPassantTarget() (position.Pos, bool) {
	if b.enPassantPos == flagNoEnPassant {
		return 0, false
	}
	return b.enPassantPos, true
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

// State classifies the position for the side to move.
func (b *Board) State() State {
	s := b.turn
	checked := b.isKingChecked(s)
	if b.HasAnyLegalMove(s) {
		if checked {
			if s == SideWhite {
				return StateCheckWhite
			}
			return StateCheckBlack
		}
		return StateRunning
	}
	if checked {
		if s == SideWhite {
			return StateCheckmateWhite
		}
		return StateCheckmateBlack
	}
	return StateStalemate
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			pl := b.cells[y*Width+x]
			sym := pl.Piece.SymbolFEN(pl.Side)
			if pl.IsEmpty() {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

var (
	drawRankFile  = color.New(color.Bold)
	drawCellLight = color.New(color.FgBlack, color.BgHiWhite)
	drawCellDark  = color.New(color.FgBlack, color.BgGreen)
	drawCellMark  = color.New(color.FgBlack, color.BgHiYellow)
)

// Draw renders the board with colored cells. Squares listed in marks
// are highlighted, which the presentation layer uses for reachable
// destinations of a selected piece.
func (b *Board) Draw(marks ...position.Pos) string {
	marked := make(map[position.Pos]bool, len(marks))
	for _, m := range marks {
		marked[m] = true
	}
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(drawRankFile.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < Width; x++ {
			pos := y*Width + x
			pl := b.cells[pos]
			sym := pl.Piece.SymbolUnicode(pl.Side, false)
			if pl.IsEmpty() {
				sym = " "
			}
			cell := drawCellDark
			if x%2^y%2 == 0 {
				cell = drawCellLight
			}
			if marked[pos] {
				cell = drawCellMark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(drawRankFile.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("cast: %04b\nhalf: %4d\nfull: %4d\nstat: %s", b.castleRights, b.halfMoveClock, b.fullMoveClock, b.State())
}
