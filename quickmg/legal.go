package quickmg

// ==========================
// Attack queries
// ==========================

// IsSquareAttacked reports whether the given square is attacked by the given color.
func (b Board) IsSquareAttacked(sq Square, by Color) bool {
	return b.isSquareAttackedWithOcc(sq, by, b.Occupied())
}

func (b Board) isSquareAttackedWithOcc(sq Square, by Color, occ Bitboard) bool {
	if !sq.Valid() {
		return false
	}
	them := b.colors[by]

	// Pawn attacks via reverse mask: a pawn of 'by' hits sq if a pawn of the
	// other color on sq would hit it back.
	if pawnAttacks[by.Other()][sq]&b.pieces[Pawn]&them != 0 {
		return true
	}
	if knightAttacks[sq]&b.pieces[Knight]&them != 0 {
		return true
	}
	if kingAttacks[sq]&b.pieces[King]&them != 0 {
		return true
	}

	rq := (b.pieces[Rook] | b.pieces[Queen]) & them
	if rq != 0 && RookAttacks(sq, occ)&rq != 0 {
		return true
	}
	bq := (b.pieces[Bishop] | b.pieces[Queen]) & them
	return bq != 0 && BishopAttacks(sq, occ)&bq != 0
}

// InCheck reports whether the specified color's king is currently attacked.
// A side without a king is never in check.
func (b Board) InCheck(c Color) bool {
	ks := b.kingSquare(c)
	if ks == NoSquare {
		return false
	}
	return b.IsSquareAttacked(ks, c.Other())
}

// ==========================
// Legality filter
// ==========================

// IsLegal reports whether a pseudo-legal move m keeps the mover's king safe.
// A castle additionally needs the king out of check and the square it passes
// over unattacked.
func (b Board) IsLegal(m Move) bool {
	us := b.sideToMove
	if side := m.Castle(); side != CastleNone {
		ci := castles[us][side-1]
		if b.InCheck(us) || b.IsSquareAttacked(ci.transit, us.Other()) {
			return false
		}
	}
	return !b.Apply(m).InCheck(us)
}

// LegalMoves filters the pseudo-legal moves down to legal ones, keeping their order.
func (b Board) LegalMoves() []Move { return b.LegalMovesInto(make([]Move, 0, 64)) }

// LegalMovesInto appends the legal moves into dst[:0] and returns it.
func (b Board) LegalMovesInto(dst []Move) []Move {
	moves := b.PseudoLegalMovesInto(dst)
	legal := moves[:0]
	for _, m := range moves {
		if b.IsLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move has any legal moves.
func (b Board) HasLegalMoves() bool {
	var buf [256]Move
	for _, m := range b.PseudoLegalMovesInto(buf[:0]) {
		if b.IsLegal(m) {
			return true
		}
	}
	return false
}

// ==========================
// Game status
// ==========================

// InCheckmate reports whether the side to move is checkmated.
func (b Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// IsDrawBy50 reports a 50-move rule draw (halfmoveClock counts half-moves).
func (b Board) IsDrawBy50() bool {
	return b.halfmoveClock >= 100
}

// IsInsufficientMaterial reports positions where neither side can mate:
// bare kings, or a single knight or bishop against a bare king.
func (b Board) IsInsufficientMaterial() bool {
	if b.pieces[Pawn]|b.pieces[Rook]|b.pieces[Queen] != 0 {
		return false
	}
	return (b.pieces[Knight] | b.pieces[Bishop]).Count() <= 1
}
