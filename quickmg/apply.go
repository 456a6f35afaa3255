package quickmg

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Apply returns the position reached by playing m on b. b itself is not
// modified.
//
// m must come from b's pseudo-legal moves. Anything else is a caller error:
// Apply does not re-validate unless built with the mgdebug tag, in which case
// it panics with an *InvariantError.
func Apply(b Board, m Move) Board { return b.Apply(m) }

// Apply is the method form of the package-level Apply.
func (b Board) Apply(m Move) Board {
	if debugChecks {
		assertGenerated(b, m)
	}

	us := b.sideToMove
	from := m.From()
	to := m.To()
	moved := m.Piece()
	captured, isCapture := m.Captured()

	b.setEnPassant(NoSquare)

	// Handle capture (including en passant)
	if m.IsEnPassant() {
		// Captured pawn is behind 'to'
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		b.removePiece(capSq)
	} else if isCapture {
		b.removePiece(to)
	}

	// Move the piece (or promote)
	b.removePiece(from)
	placed := moved
	if promo, ok := m.Promotion(); ok {
		placed = promo
	}
	b.addPiece(to, NewPiece(us, placed))

	// Castling rook movement
	if side := m.Castle(); side != CastleNone {
		ci := castles[us][side-1]
		b.removePiece(ci.rookFrom)
		b.addPiece(ci.rookTo, NewPiece(us, Rook))
	}

	// Update castling rights
	lost := CastlingNone
	switch moved {
	case King:
		lost |= kingRights[us]
	case Rook:
		lost |= rookHomeRights[from] & kingRights[us]
	}
	if isCapture && captured == Rook && !m.IsEnPassant() {
		lost |= rookHomeRights[to] & kingRights[us.Other()]
	}
	b.setCastlingRights(b.castlingRights &^ lost)

	// Set en passant square if double pawn push
	if moved == Pawn && (to-from == 16 || from-to == 16) {
		b.setEnPassant((from + to) / 2)
	}

	// Halfmove clock
	if moved == Pawn || isCapture {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	// Fullmove number increments after Black's move
	if us == Black {
		b.fullmoveNumber++
	}

	b.sideToMove = us.Other()
	b.zobristKey ^= zobristSide

	if debugChecks {
		if err := b.Validate(); err != nil {
			panic(err)
		}
	}
	return b
}

// assertGenerated panics unless m is one of b's pseudo-legal moves.
func assertGenerated(b Board, m Move) {
	if !slices.Contains(b.PseudoLegalMoves(), m) {
		panic(&InvariantError{Check: fmt.Sprintf("move %s (%d) is not pseudo-legal in %s", m, uint32(m), b.FEN())})
	}
}
