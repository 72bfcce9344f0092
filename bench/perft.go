// Package bench walks the full legal move tree to a fixed depth and
// tallies node, capture, en-passant, castling, promotion, and check
// counts. It exists to exercise move generation end to end.
package bench

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Sankalpingle/ChessGame/board"
)

// Counters collects what the walk saw at the leaf depth.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func Perft(depth int, fen string, verbose bool, out chan<- string) (Counters, error) {
	var c Counters
	b, _, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return c, err
	}

	start := time.Now()
	runPerft(b, depth, true, verbose, out, &c)
	elapsed := time.Since(start)

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
				depth, c.Nodes, int(float64(c.Nodes)/elapsed.Seconds()),
				c.Captures, c.EnPassants, c.Castles, c.Promotions, c.Checks, elapsed.Seconds())
	}

	return c, nil
}

func runPerft(b *board.Board, d int, root, verbose bool, out chan<- string, c *Counters) uint64 {
	if d == 0 {
		c.Nodes++
		return 1
	}

	var sum uint64
	for _, mv := range b.GenerateMoves(b.Turn()) {
		var child uint64
		bb := b.Clone()
		bb.Apply(mv)
		if d != 1 {
			child = runPerft(bb, d-1, false, verbose, out, c)
		} else {
			child = 1
			c.Nodes++
			if mv.IsCapture {
				c.Captures++
			}
			if mv.IsEnPassant {
				c.EnPassants++
			}
			if mv.IsCastle != board.CastleDirectionUnknown {
				c.Castles++
			}
			if mv.IsPromote != board.PieceUnknown {
				c.Promotions++
			}
			if mv.IsCheck {
				c.Checks++
			}
		}
		if verbose && root && out != nil {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}
