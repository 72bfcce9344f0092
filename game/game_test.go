package game

import (
	"errors"
	"testing"

	"github.com/Sankalpingle/ChessGame/board"
	"github.com/Sankalpingle/ChessGame/position"
)

func mustPos(t *testing.T, n string) position.Pos {
	t.Helper()
	pos, err := position.NewPosFromNotation(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return pos
}

func playUCI(t *testing.T, g *Game, uci string) GameState {
	t.Helper()
	mvs, err := g.LegalMoves(mustPos(t, uci[:2]))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, mv := range mvs {
		if mv.UCI() == uci {
			return g.ApplyMove(mv)
		}
	}
	t.Fatalf("move %s not offered", uci)
	return GameState{}
}

func TestNewGame(t *testing.T) {
	t.Parallel()
	g := New()

	if got := g.SideToMove(); got != board.SideWhite {
		t.Errorf("unexpected side to move: got=%s want=%s", got, board.SideWhite)
	}
	if got := g.FEN(); got != board.DefaultStartingPositionFEN {
		t.Errorf("unexpected FEN: got=%s want=%s", got, board.DefaultStartingPositionFEN)
	}

	state := g.State()
	if state.Phase != PhaseOngoing || state.InCheck || state.Winner != board.SideUnknown {
		t.Errorf("unexpected state: %+v", state)
	}

	var total int
	for _, sq := range []string{"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2", "b1", "g1"} {
		mvs, err := g.LegalMoves(mustPos(t, sq))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		total += len(mvs)
	}
	if total != 20 {
		t.Errorf("unexpected legal move count: got=%d want=20", total)
	}
}

func TestLegalMovesForWaitingSide(t *testing.T) {
	t.Parallel()
	g := New()

	// Black's pieces and empty squares yield no moves while White is up
	for _, sq := range []string{"e7", "g8", "e4"} {
		mvs, err := g.LegalMoves(mustPos(t, sq))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mvs) != 0 {
			t.Errorf("unexpected moves for %s: got=%d want=0", sq, len(mvs))
		}
	}
}

func TestLegalMovesInvalidSquare(t *testing.T) {
	t.Parallel()
	g := New()
	if _, err := g.LegalMoves(position.Pos(64)); !errors.Is(err, position.ErrInvalidSquare) {
		t.Errorf("unexpected error: got=%v want=%v", err, position.ErrInvalidSquare)
	}
	if _, err := g.PieceAt(position.Pos(-1)); !errors.Is(err, position.ErrInvalidSquare) {
		t.Errorf("unexpected error: got=%v want=%v", err, position.ErrInvalidSquare)
	}
}

func TestFoolsMateThroughFacade(t *testing.T) {
	t.Parallel()
	g := New()

	for _, uci := range []string{"f2f3", "e7e5", "g2g4"} {
		state := playUCI(t, g, uci)
		if state.Phase != PhaseOngoing {
			t.Fatalf("unexpected phase after %s: %s", uci, state.Phase)
		}
	}

	state := playUCI(t, g, "d8h4")
	if state.Phase != PhaseCheckmate {
		t.Fatalf("unexpected phase: got=%s want=%s", state.Phase, PhaseCheckmate)
	}
	if !state.Phase.IsTerminal() {
		t.Error("checkmate should be terminal")
	}
	if !state.InCheck {
		t.Error("checkmated side should be reported in check")
	}
	if state.Winner != board.SideBlack {
		t.Errorf("unexpected winner: got=%s want=%s", state.Winner, board.SideBlack)
	}
	if state.SideToMove != board.SideWhite {
		t.Errorf("unexpected side to move: got=%s want=%s", state.SideToMove, board.SideWhite)
	}

	// no square offers a move once the game is over
	mvs, err := g.LegalMoves(mustPos(t, "e1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mvs) != 0 {
		t.Errorf("moves offered after checkmate: got=%d", len(mvs))
	}

	g.Reset()
	if got := g.FEN(); got != board.DefaultStartingPositionFEN {
		t.Errorf("reset did not restore starting position: got=%s", got)
	}
}

func TestNewFromFEN(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		want GameState
	}{
		{
			name: "stalemate",
			fen:  "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			want: GameState{Phase: PhaseStalemate, SideToMove: board.SideBlack},
		},
		{
			name: "checkmate",
			fen:  "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
			want: GameState{Phase: PhaseCheckmate, SideToMove: board.SideBlack, InCheck: true, Winner: board.SideWhite},
		},
		{
			name: "check",
			fen:  "4k3/4r3/8/8/8/8/8/4K3 w - - 0 1",
			want: GameState{Phase: PhaseOngoing, SideToMove: board.SideWhite, InCheck: true},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := NewFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := g.State(); got != tt.want {
				t.Errorf("unexpected state: got=%+v want=%+v", got, tt.want)
			}
		})
	}

	if _, err := NewFromFEN("not a position"); !errors.Is(err, board.ErrInvalidFEN) {
		t.Errorf("unexpected error: got=%v want=%v", err, board.ErrInvalidFEN)
	}
}
