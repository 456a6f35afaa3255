package quickmg

// Pseudo-legal generation follows the piece geometry and board occupancy but
// does not ask whether the mover's king is left in check; LegalMoves does that.
//
// Output order is fixed: pawns, knights, bishops, rooks, queens, king. Within
// a piece type sources are visited from a1 to h8, and so are their targets.
// Promotions come as queen, rook, bishop, knight. Castling follows the king's
// ordinary steps, kingside first.

// GeneratePseudoLegalMoves returns every pseudo-legal move for the side to move.
func GeneratePseudoLegalMoves(b Board) []Move { return b.PseudoLegalMoves() }

// PseudoLegalMoves returns all pseudo-legal moves (allocates a new slice).
func (b Board) PseudoLegalMoves() []Move { return b.PseudoLegalMovesInto(make([]Move, 0, 64)) }

// PseudoLegalMovesInto appends all pseudo-legal moves into dst[:0] and returns it.
// Reusing dst avoids allocations in hot paths.
func (b Board) PseudoLegalMovesInto(dst []Move) []Move {
	moves := dst[:0]
	for _, pt := range PieceTypes {
		switch pt {
		case Pawn:
			moves = b.pawnMoves(moves)
		case Knight:
			moves = b.knightMoves(moves)
		case Bishop, Rook, Queen:
			moves = b.sliderMoves(moves, pt)
		case King:
			moves = b.kingMoves(moves)
		}
	}
	return moves
}

// capturedAt returns the type of the opposing piece on to, or PieceTypeNone.
func (b Board) capturedAt(to Square) PieceType {
	if !b.colors[b.sideToMove.Other()].IsSet(to) {
		return PieceTypeNone
	}
	pt, _ := b.PieceTypeAt(to)
	return pt
}

// appendTargets adds one move per target square.
func (b Board) appendTargets(moves []Move, from Square, pt PieceType, targets Bitboard) []Move {
	for t := targets; t != 0; t = t.WithoutLSB() {
		to, _ := t.LSB()
		moves = append(moves, NewMove(from, to, pt, b.capturedAt(to), PieceTypeNone, FlagNone))
	}
	return moves
}

// ==========================
// Pawns
// ==========================

func (b Board) pawnMoves(moves []Move) []Move {
	us := b.sideToMove
	empty := b.EmptySquares()
	opp := b.colors[us.Other()]

	forward, startRank, lastRank := North, Rank2, Rank8
	if us == Black {
		forward, startRank, lastRank = South, Rank7, Rank1
	}
	epTarget := b.enPassantTarget()

	for pawns := b.PiecesOf(us, Pawn); pawns != 0; pawns = pawns.WithoutLSB() {
		from, _ := pawns.LSB()
		src := SquareBB(from)

		// Pushes
		if one := src.Shift(forward) & empty; one != 0 {
			to, _ := one.LSB()
			moves = appendPawnMove(moves, from, to, PieceTypeNone, lastRank)
			if src&startRank != 0 {
				if two := one.Shift(forward) & empty; two != 0 {
					to2, _ := two.LSB()
					moves = append(moves, NewMove(from, to2, Pawn, PieceTypeNone, PieceTypeNone, FlagNone))
				}
			}
		}

		// Captures
		caps := pawnAttacks[us][from]
		for t := caps & opp; t != 0; t = t.WithoutLSB() {
			to, _ := t.LSB()
			moves = appendPawnMove(moves, from, to, b.capturedAt(to), lastRank)
		}
		if caps&epTarget != 0 {
			moves = append(moves, NewMove(from, b.enPassant, Pawn, Pawn, PieceTypeNone, FlagEnPassant))
		}
	}
	return moves
}

// enPassantTarget returns the en-passant square as a bitboard, or 0 unless it
// is empty and an enemy pawn stands directly behind it.
func (b Board) enPassantTarget() Bitboard {
	ep := b.enPassant
	if !ep.Valid() || b.Occupied().IsSet(ep) {
		return 0
	}
	behind := ep - 8
	if b.sideToMove == Black {
		behind = ep + 8
	}
	if !behind.Valid() || !b.PiecesOf(b.sideToMove.Other(), Pawn).IsSet(behind) {
		return 0
	}
	return SquareBB(ep)
}

// appendPawnMove adds a pawn move, expanded into the four promotion choices
// when it lands on the last rank.
func appendPawnMove(moves []Move, from, to Square, captured PieceType, lastRank Bitboard) []Move {
	if !lastRank.IsSet(to) {
		return append(moves, NewMove(from, to, Pawn, captured, PieceTypeNone, FlagNone))
	}
	for _, promo := range promotionTypes {
		moves = append(moves, NewMove(from, to, Pawn, captured, promo, FlagNone))
	}
	return moves
}

// ==========================
// Knights
// ==========================

func (b Board) knightMoves(moves []Move) []Move {
	own := b.colors[b.sideToMove]
	for knights := b.PiecesOf(b.sideToMove, Knight); knights != 0; knights = knights.WithoutLSB() {
		from, _ := knights.LSB()
		moves = b.appendTargets(moves, from, Knight, knightAttacks[from]&^own)
	}
	return moves
}

// ==========================
// Bishops, rooks, queens
// ==========================

func (b Board) sliderMoves(moves []Move, pt PieceType) []Move {
	own := b.colors[b.sideToMove]
	occ := b.Occupied()
	for sliders := b.PiecesOf(b.sideToMove, pt); sliders != 0; sliders = sliders.WithoutLSB() {
		from, _ := sliders.LSB()
		var attacks Bitboard
		switch pt {
		case Bishop:
			attacks = BishopAttacks(from, occ)
		case Rook:
			attacks = RookAttacks(from, occ)
		case Queen:
			attacks = QueenAttacks(from, occ)
		}
		moves = b.appendTargets(moves, from, pt, attacks&^own)
	}
	return moves
}

// ==========================
// King
// ==========================

func (b Board) kingMoves(moves []Move) []Move {
	us := b.sideToMove
	own := b.colors[us]
	for kings := b.PiecesOf(us, King); kings != 0; kings = kings.WithoutLSB() {
		from, _ := kings.LSB()
		moves = b.appendTargets(moves, from, King, kingAttacks[from]&^own)
	}

	// Castling (rights + empty path); attacks on the path are a legality question.
	occ := b.Occupied()
	for i, flag := range [2]MoveFlag{FlagCastleKing, FlagCastleQueen} {
		ci := castles[us][i]
		if b.castlingRights&ci.right == 0 {
			continue
		}
		if !b.PiecesOf(us, King).IsSet(ci.kingFrom) || !b.PiecesOf(us, Rook).IsSet(ci.rookFrom) {
			continue
		}
		if occ&ci.between != 0 {
			continue
		}
		moves = append(moves, NewMove(ci.kingFrom, ci.kingTo, King, PieceTypeNone, PieceTypeNone, flag))
	}
	return moves
}
