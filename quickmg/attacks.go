package quickmg

// Precomputed attack masks for knights and kings from each square.
var knightAttacks [64]Bitboard
var kingAttacks [64]Bitboard

// pawnAttacks[color][sq] gives the squares a pawn of 'color' on 'sq' attacks.
var pawnAttacks [2][64]Bitboard

// rays[dir][sq] is every square reachable from sq in dir on an empty board,
// excluding sq itself.
var rays [8][64]Bitboard

var rookDirections = [4]Direction{North, South, East, West}
var bishopDirections = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}

func init() {
	initLeaperTables()
	initRays()
}

// initLeaperTables builds knight, king and pawn capture masks from masked
// shifts, so no leap can wrap across the a/h edge.
func initLeaperTables() {
	for sq := Square(0); sq < 64; sq++ {
		b := SquareBB(sq)

		knightAttacks[sq] = (b&NotFileH)<<17 | (b&NotFileA)<<15 |
			(b&NotFileGH)<<10 | (b&NotFileAB)<<6 |
			(b&NotFileH)>>15 | (b&NotFileA)>>17 |
			(b&NotFileGH)>>6 | (b&NotFileAB)>>10

		var k Bitboard
		for d := North; d <= SouthWest; d++ {
			k |= b.Shift(d)
		}
		kingAttacks[sq] = k

		pawnAttacks[White][sq] = b.Shift(NorthEast) | b.Shift(NorthWest)
		pawnAttacks[Black][sq] = b.Shift(SouthEast) | b.Shift(SouthWest)
	}
}

func initRays() {
	for d := North; d <= SouthWest; d++ {
		for sq := Square(0); sq < 64; sq++ {
			rays[d][sq] = walkRay(sq, Empty, d)
		}
	}
}

// walkRay steps from sq in dir one square at a time until it leaves the board
// or lands on an occupied square, which is included.
func walkRay(sq Square, occ Bitboard, dir Direction) Bitboard {
	var attacks Bitboard
	for b := SquareBB(sq).Shift(dir); b != 0; b = b.Shift(dir) {
		attacks |= b
		if b&occ != 0 {
			break
		}
	}
	return attacks
}

// increasing reports whether a direction walks toward higher square indices.
func increasing(dir Direction) bool {
	switch dir {
	case North, East, NorthEast, NorthWest:
		return true
	}
	return false
}

// rayAttacks cuts the precomputed ray at its first blocker.
func rayAttacks(sq Square, occ Bitboard, dir Direction) Bitboard {
	ray := rays[dir][sq]
	blockers := ray & occ
	if blockers == 0 {
		return ray
	}
	var first Square
	if increasing(dir) {
		first, _ = blockers.LSB()
	} else {
		first, _ = blockers.MSB()
	}
	return ray &^ rays[dir][first]
}

// RookAttacks returns rook attacks from sq for the given occupancy. Blocking
// squares are included whichever side occupies them.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range rookDirections {
		attacks |= rayAttacks(sq, occ, d)
	}
	return attacks
}

// BishopAttacks returns bishop attacks from sq for the given occupancy.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range bishopDirections {
		attacks |= rayAttacks(sq, occ, d)
	}
	return attacks
}

// QueenAttacks combines rook and bishop attacks.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// KnightAttacks returns the knight leap targets from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq&63] }

// KingAttacks returns the squares adjacent to sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq&63] }

// PawnAttacks returns the squares a pawn of color c on sq captures on.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c&1][sq&63] }
