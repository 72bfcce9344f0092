package board_test

import (
	"math/rand"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"github.com/Sankalpingle/ChessGame/board"
)

func legalUCIs(t *testing.T, fen string) []string {
	t.Helper()
	b, turn, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ucis []string
	for _, mv := range b.GenerateMoves(turn) {
		ucis = append(ucis, mv.UCI())
	}
	slices.Sort(ucis)
	return ucis
}

func referenceUCIs(fen string) []string {
	rb := dragontoothmg.ParseFen(fen)
	var ucis []string
	for _, mv := range rb.GenerateLegalMoves() {
		ucis = append(ucis, mv.String())
	}
	slices.Sort(ucis)
	return ucis
}

// Positions are promotion free: the generator promotes straight to
// queen, while the reference emits all four underpromotion variants.
func TestMoveGenerationMatchesReference(t *testing.T) {
	t.Parallel()
	fens := []string{
		board.DefaultStartingPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/1bppqppp/p1n2n2/2b1p3/B3P3/2NP1N2/1PP2PPP/R1BQ1RK1 b kq - 2 10",
		"8/5k2/4N3/8/8/3K4/8/8 w - - 0 71",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
		"r4rk1/1bpp1ppp/p2q4/2bPp3/8/1BPP1Q2/1P3PPP/R1B2RK1 b - - 2 15",
	}
	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			got, want := legalUCIs(t, fen), referenceUCIs(fen)
			if !slices.Equal(got, want) {
				t.Errorf("move lists diverge:\ngot= %v\nwant=%v", got, want)
			}
		})
	}
}

func TestPlayoutMatchesReference(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))

	b, _, err := board.NewBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rb := dragontoothmg.ParseFen(dragontoothmg.Startpos)

	for ply := 0; ply < 40; ply++ {
		mvs := b.GenerateMoves(b.Turn())
		refMvs := rb.GenerateLegalMoves()
		if len(mvs) == 0 {
			if len(refMvs) != 0 {
				t.Fatalf("out of moves at ply %d while reference still has %d", ply, len(refMvs))
			}
			break
		}

		var got []string
		promotion := false
		for _, mv := range mvs {
			if mv.IsPromote != board.PieceUnknown {
				promotion = true
			}
			got = append(got, mv.UCI())
		}
		if promotion {
			// promotion fan-out differs from the reference past this point
			break
		}
		want := make([]string, 0, len(refMvs))
		for _, mv := range refMvs {
			want = append(want, mv.String())
		}
		slices.Sort(got)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Fatalf("move lists diverge at ply %d (%s):\ngot= %v\nwant=%v", ply, b.FEN(), got, want)
		}

		pick := mvs[rng.Intn(len(mvs))]
		b.Apply(pick)
		applied := false
		for _, mv := range refMvs {
			if mv.String() == pick.UCI() {
				rb.Apply(mv)
				applied = true
				break
			}
		}
		if !applied {
			t.Fatalf("reference has no counterpart for %s at ply %d", pick.UCI(), ply)
		}
	}
}
