package board

import "github.com/Sankalpingle/ChessGame/position"

// isKingChecked reports whether the given side's king is attacked. A
// side with no king on the board counts as checked; normal play never
// reaches that state, but a constructed position must not crash here.
func (b *Board) isKingChecked(s Side) bool {
	king, ok := b.kingPos(s)
	if !ok {
		return true
	}
	return b.IsSquareAttacked(king, s.Opposite())
}

// IsChecked reports whether the given side is currently in check.
func (b *Board) IsChecked(s Side) bool {
	return b.isKingChecked(s)
}

// IsLegal reports whether applying the move leaves the mover's own
// king safe. Simulation clones the board and runs the one true Apply.
func (b *Board) IsLegal(mv Move) bool {
	bb := b.Clone()
	bb.Apply(mv)
	return !bb.isKingChecked(mv.IsTurn)
}

// LegalMovesFrom narrows the pseudo-legal moves of the piece at from
// to those that keep the mover's king safe. Each surviving move gets
// its IsCheck flag set when it checks the opponent.
func (b *Board) LegalMovesFrom(from position.Pos) []Move {
	var mvs []Move
	for _, mv := range b.PseudoLegalMovesFrom(from) {
		bb := b.Clone()
		bb.Apply(mv)
		if bb.isKingChecked(mv.IsTurn) {
			continue
		}
		mv.IsCheck = bb.isKingChecked(mv.IsTurn.Opposite())
		mvs = append(mvs, mv)
	}
	return mvs
}

// GenerateMoves enumerates every legal move for the given side.
func (b *Board) GenerateMoves(s Side) []Move {
	var mvs []Move
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		pl := b.cells[pos]
		if pl.IsEmpty() || pl.Side != s {
			continue
		}
		mvs = append(mvs, b.LegalMovesFrom(pos)...)
	}
	return mvs
}

// HasAnyLegalMove scans the side's pieces and stops at the first move
// that passes the legality filter. Together with the check test this
// is the checkmate/stalemate predicate.
func (b *Board) HasAnyLegalMove(s Side) bool {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		pl := b.cells[pos]
		if pl.IsEmpty() || pl.Side != s {
			continue
		}
		for _, mv := range b.PseudoLegalMovesFrom(pos) {
			if b.IsLegal(mv) {
				return true
			}
		}
	}
	return false
}
