package board

import (
	"testing"
)

func TestStateClassification(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		want State
	}{
		{
			name: "initial position running",
			fen:  DefaultStartingPositionFEN,
			want: StateRunning,
		},
		{
			name: "white king in check",
			fen:  "4k3/4r3/8/8/8/8/8/4K3 w - - 0 1",
			want: StateCheckWhite,
		},
		{
			name: "black king in check",
			fen:  "4k3/8/8/8/8/8/4R3/4K3 b - - 0 1",
			want: StateCheckBlack,
		},
		{
			name: "back rank checkmate on black",
			fen:  "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
			want: StateCheckmateBlack,
		},
		{
			name: "smothered stalemate on black",
			fen:  "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			want: StateStalemate,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, tt.fen)
			if got := b.State(); got != tt.want {
				t.Errorf("unexpected state: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestFoolsMate(t *testing.T) {
	t.Parallel()
	b, _, err := NewBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		from := mustPos(t, uci[:2])
		mv, ok := findMove(b.LegalMovesFrom(from), uci)
		if !ok {
			t.Fatalf("move %s not legal", uci)
		}
		b.Apply(mv)
	}

	state := b.State()
	if state != StateCheckmateWhite {
		t.Fatalf("unexpected state: got=%s want=%s", state, StateCheckmateWhite)
	}
	if !state.IsCheckmate() || state.IsRunning() {
		t.Errorf("state flags inconsistent for %s", state)
	}
	if got := state.Winner(); got != SideBlack {
		t.Errorf("unexpected winner: got=%s want=%s", got, SideBlack)
	}
	if len(b.GenerateMoves(SideWhite)) != 0 {
		t.Error("expected no legal moves in checkmate")
	}
}

func TestStateWinner(t *testing.T) {
	t.Parallel()
	tests := []struct {
		state State
		want  Side
	}{
		{StateRunning, SideUnknown},
		{StateCheckWhite, SideUnknown},
		{StateCheckmateWhite, SideBlack},
		{StateCheckmateBlack, SideWhite},
		{StateStalemate, SideUnknown},
	}
	for _, tt := range tests {
		if got := tt.state.Winner(); got != tt.want {
			t.Errorf("unexpected winner for %s: got=%s want=%s", tt.state, got, tt.want)
		}
	}
}
