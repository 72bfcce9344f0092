package board

import "github.com/Sankalpingle/ChessGame/position"

// Apply mutates the board by the given move, which must have been
// produced by this board's move generation. The same routine serves
// real moves and legality simulation; simulation runs it on a clone, so
// there is no divergent "apply lite" path to drift out of sync.
func (b *Board) Apply(mv Move) {
	moving := b.cells[mv.From]
	s := moving.Side

	// capturing a rook on its home corner permanently revokes that
	// corner's castling right
	if target := b.cells[mv.To]; target.Piece == PieceRook {
		if d, ok := rightByRookHome[mv.To]; ok && d.Side() == target.Side {
			b.castleRights.Set(d, false)
		}
	}

	b.cells[mv.From] = Placement{}

	switch {
	case mv.IsEnPassant && moving.Piece == PiecePawn:
		b.cells[mv.To] = moving
		// the captured pawn sits on the mover's origin rank at the
		// destination file, not on the destination square
		victim := mv.From.Y()*Width + mv.To.X()
		b.cells[victim] = Placement{}
	case moving.Piece == PiecePawn && mv.To.Y() == s.PromotionRank():
		promote := mv.IsPromote
		if promote == PieceUnknown {
			promote = PieceQueen
		}
		b.cells[mv.To] = Placement{Piece: promote, Side: s}
	case mv.IsPromote != PieceUnknown:
		b.cells[mv.To] = Placement{Piece: mv.IsPromote, Side: s}
	default:
		b.cells[mv.To] = moving
	}

	switch moving.Piece {
	case PieceKing:
		for _, d := range castleDirectionsFor(s) {
			b.castleRights.Set(d, false)
		}
		if mv.IsCastle != CastleDirectionUnknown {
			track := castleTracks[mv.IsCastle]
			if b.cells[track.rookFrom].Is(PieceRook, s) {
				b.cells[track.rookTo] = b.cells[track.rookFrom]
				b.cells[track.rookFrom] = Placement{}
			}
		}
	case PieceRook:
		if d, ok := rightByRookHome[mv.From]; ok && d.Side() == s {
			b.castleRights.Set(d, false)
		}
	}

	// a double push arms the en-passant target on the skipped square;
	// every other move clears it
	b.enPassantPos = flagNoEnPassant
	if moving.Piece == PiecePawn {
		if dy := mv.To.Y() - mv.From.Y(); dy == 2 || dy == -2 {
			b.enPassantPos = (mv.From + mv.To) / 2
		}
	}

	if moving.Piece == PiecePawn || mv.IsCapture {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}
	if b.turn == SideBlack {
		b.fullMoveClock++
	}

	b.turn = b.turn.Opposite()
}

// kingPos locates the king of the given side, reporting false when it
// is absent.
func (b *Board) kingPos(s Side) (position.Pos, bool) {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if b.cells[pos].Is(PieceKing, s) {
			return pos, true
		}
	}
	return 0, false
}
