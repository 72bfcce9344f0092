package board

import "github.com/Sankalpingle/ChessGame/position"

// offset steps from a square by (dx, dy), reporting false when the
// result leaves the board.
func offset(from position.Pos, d delta) (position.Pos, bool) {
	x := from.X() + position.Pos(d.dx)
	y := from.Y() + position.Pos(d.dy)
	if x < 0 || Width <= x || y < 0 || Height <= y {
		return 0, false
	}
	return y*Width + x, true
}

// PseudoLegalMovesFrom enumerates moves for the piece occupying from,
// obeying movement shape and occupancy but not king safety. An empty
// cell yields no moves. Move ordering is unspecified.
func (b *Board) PseudoLegalMovesFrom(from position.Pos) []Move {
	if !from.Valid() {
		return nil
	}
	pl := b.cells[from]
	switch pl.Piece {
	case PiecePawn:
		return b.genPawnMoves(from, pl.Side)
	case PieceKnight:
		return b.genOffsetMoves(from, pl, deltasKnight[:])
	case PieceBishop, PieceRook, PieceQueen:
		return b.genSlidingMoves(from, pl, rayDeltas(pl.Piece))
	case PieceKing:
		mvs := b.genOffsetMoves(from, pl, deltasKing[:])
		return append(mvs, b.genCastlingMoves(from, pl.Side)...)
	default:
		return nil
	}
}

// GeneratePseudoLegalMoves enumerates pseudo-legal moves for every
// piece of the given side.
func (b *Board) GeneratePseudoLegalMoves(s Side) []Move {
	var mvs []Move
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if b.cells[pos].Side != s || b.cells[pos].IsEmpty() {
			continue
		}
		mvs = append(mvs, b.PseudoLegalMovesFrom(pos)...)
	}
	return mvs
}

func (b *Board) genPawnMoves(from position.Pos, s Side) []Move {
	var mvs []Move
	forward := delta{dx: 0, dy: int8(s.Forward())}

	// single and double push
	if to, ok := offset(from, forward); ok && b.cells[to].IsEmpty() {
		mvs = append(mvs, b.newPawnMove(from, to, s, false))
		if from.Y() == s.PawnStartRank() {
			if to2, ok := offset(to, forward); ok && b.cells[to2].IsEmpty() {
				mvs = append(mvs, Move{From: from, To: to2, Piece: PiecePawn, IsTurn: s})
			}
		}
	}

	// diagonal captures
	for _, dx := range [2]int8{-1, 1} {
		to, ok := offset(from, delta{dx: dx, dy: int8(s.Forward())})
		if !ok {
			continue
		}
		target := b.cells[to]
		if !target.IsEmpty() && target.Side != s {
			mvs = append(mvs, b.newPawnMove(from, to, s, true))
			continue
		}
		// en passant: destination is the board's target square and an
		// enemy pawn sits beside the mover on its current rank
		if target.IsEmpty() && to == b.enPassantPos {
			beside, ok := offset(from, delta{dx: dx, dy: 0})
			if ok && b.cells[beside].Is(PiecePawn, s.Opposite()) {
				mvs = append(mvs, Move{
					From:        from,
					To:          to,
					Piece:       PiecePawn,
					IsTurn:      s,
					IsCapture:   true,
					IsEnPassant: true,
				})
			}
		}
	}
	return mvs
}

// newPawnMove emits a promotion to Queen when the pawn reaches the far
// rank; no other promotion piece is ever generated.
func (b *Board) newPawnMove(from, to position.Pos, s Side, capture bool) Move {
	mv := Move{From: from, To: to, Piece: PiecePawn, IsTurn: s, IsCapture: capture}
	if to.Y() == s.PromotionRank() {
		mv.IsPromote = PieceQueen
	}
	return mv
}

func (b *Board) genOffsetMoves(from position.Pos, pl Placement, ds []delta) []Move {
	var mvs []Move
	for _, d := range ds {
		to, ok := offset(from, d)
		if !ok {
			continue
		}
		target := b.cells[to]
		if !target.IsEmpty() && target.Side == pl.Side {
			continue
		}
		mvs = append(mvs, Move{
			From:      from,
			To:        to,
			Piece:     pl.Piece,
			IsTurn:    pl.Side,
			IsCapture: !target.IsEmpty(),
		})
	}
	return mvs
}

func (b *Board) genSlidingMoves(from position.Pos, pl Placement, ds []delta) []Move {
	var mvs []Move
	for _, d := range ds {
		to, ok := offset(from, d)
		for ok {
			target := b.cells[to]
			if target.IsEmpty() {
				mvs = append(mvs, Move{From: from, To: to, Piece: pl.Piece, IsTurn: pl.Side})
				to, ok = offset(to, d)
				continue
			}
			if target.Side != pl.Side {
				mvs = append(mvs, Move{From: from, To: to, Piece: pl.Piece, IsTurn: pl.Side, IsCapture: true})
			}
			break
		}
	}
	return mvs
}

// genCastlingMoves emits castling candidates for a king on its home
// square. A candidate requires the right to still stand (king and that
// corner's rook unmoved), the rook present on its corner, the squares
// between them empty, and the king's start, transit, and destination
// squares unattacked.
func (b *Board) genCastlingMoves(from position.Pos, s Side) []Move {
	if !b.castleRights.IsSideAllowed(s) {
		return nil
	}
	var mvs []Move
	enemy := s.Opposite()
	for _, d := range castleDirectionsFor(s) {
		if !b.castleRights.IsAllowed(d) {
			continue
		}
		track := castleTracks[d]
		if from != track.kingFrom {
			continue
		}
		if !b.cells[track.rookFrom].Is(PieceRook, s) {
			continue
		}
		blocked := false
		for _, pos := range track.empty {
			if !b.cells[pos].IsEmpty() {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		unsafe := false
		for _, pos := range track.safe {
			if b.IsSquareAttacked(pos, enemy) {
				unsafe = true
				break
			}
		}
		if unsafe {
			continue
		}
		mvs = append(mvs, Move{
			From:     track.kingFrom,
			To:       track.kingTo,
			Piece:    PieceKing,
			IsTurn:   s,
			IsCastle: d,
		})
	}
	return mvs
}
