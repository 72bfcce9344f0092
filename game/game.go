// Package game exposes the in-process API the presentation layer
// drives: query legal moves for a square, apply one of them, read
// cells for rendering, and reset. The engine itself never surfaces an
// illegal move; the only externally observable error is an
// out-of-range square.
package game

import (
	"github.com/Sankalpingle/ChessGame/board"
	"github.com/Sankalpingle/ChessGame/position"
)

type Phase uint8

const (
	PhaseUnknown Phase = iota
	PhaseOngoing
	PhaseCheckmate
	PhaseStalemate
)

func (p Phase) String() string {
	switch p {
	case PhaseOngoing:
		return "Ongoing"
	case PhaseCheckmate:
		return "Checkmate"
	case PhaseStalemate:
		return "Stalemate"
	default:
		return ""
	}
}

// IsTerminal reports whether no further moves are accepted until Reset.
func (p Phase) IsTerminal() bool {
	return p == PhaseCheckmate || p == PhaseStalemate
}

// GameState classifies the position after a completed move. Winner is
// set only for PhaseCheckmate.
type GameState struct {
	Phase      Phase
	SideToMove board.Side
	InCheck    bool
	Winner     board.Side
}

// Game owns the single live board. Calls must be serialized by the
// caller; the engine runs every operation to completion and keeps no
// background state.
type Game struct {
	board *board.Board
}

func New() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// NewFromFEN starts a game from an arbitrary position.
func NewFromFEN(fen string) (*Game, error) {
	b, _, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return nil, err
	}
	return &Game{board: b}, nil
}

// Reset replaces the board with the standard starting position: all
// castling rights intact, no en-passant target, White to move.
func (g *Game) Reset() {
	b, _, err := board.NewBoard()
	if err != nil {
		panic(err) // the default starting position always parses
	}
	g.board = b
}

// LegalMoves returns the legal moves for the piece on the given
// square. Squares that are empty or hold the waiting side's piece
// yield no moves. Move ordering is unspecified.
func (g *Game) LegalMoves(sq position.Pos) ([]board.Move, error) {
	pl, err := g.board.PieceAt(sq)
	if err != nil {
		return nil, err
	}
	if pl.IsEmpty() || pl.Side != g.board.Turn() {
		return nil, nil
	}
	return g.board.LegalMovesFrom(sq), nil
}

// ApplyMove applies a move previously returned by LegalMoves for the
// current side to move and classifies the resulting position.
func (g *Game) ApplyMove(mv board.Move) GameState {
	g.board.Apply(mv)
	return g.State()
}

// PieceAt returns the cell content for rendering; the zero Placement
// means empty.
func (g *Game) PieceAt(sq position.Pos) (board.Placement, error) {
	return g.board.PieceAt(sq)
}

// State classifies the current position without mutating it.
func (g *Game) State() GameState {
	st := g.board.State()
	gs := GameState{SideToMove: g.board.Turn()}
	switch {
	case st.IsCheckmate():
		gs.Phase = PhaseCheckmate
		gs.InCheck = true
		gs.Winner = st.Winner()
	case st.IsDraw():
		gs.Phase = PhaseStalemate
	default:
		gs.Phase = PhaseOngoing
		gs.InCheck = st.IsCheck()
	}
	return gs
}

func (g *Game) SideToMove() board.Side {
	return g.board.Turn()
}

// Draw renders the current board, highlighting the given squares.
func (g *Game) Draw(marks ...position.Pos) string {
	return g.board.Draw(marks...)
}

func (g *Game) FEN() string {
	return g.board.FEN()
}
