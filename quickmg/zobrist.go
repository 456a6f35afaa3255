package quickmg

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
// They are filled by a package-level initializer so they are ready before any
// init function (the start position is hashed in one).
var (
	zobristPiece     [15][64]uint64 // indexed by Piece code and square
	zobristCastle    [16]uint64     // indexed by CastlingRights (0-15)
	zobristEnPassant [8]uint64      // indexed by en-passant file
	zobristSide      uint64         // XORed in when Black is to move

	_ = initZobrist()
)

func initZobrist() bool {
	// Fixed seed so hashes are reproducible across runs and tests.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 15; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
	return true
}

// ComputeZobrist calculates the Zobrist hash of the position from scratch.
func (b Board) ComputeZobrist() uint64 {
	var key uint64

	for c := White; c <= Black; c++ {
		for _, pt := range PieceTypes {
			p := NewPiece(c, pt)
			for bb := b.pieces[pt] & b.colors[c]; bb != 0; bb = bb.WithoutLSB() {
				sq, _ := bb.LSB()
				key ^= zobristPiece[p][sq]
			}
		}
	}

	if b.sideToMove == Black {
		key ^= zobristSide
	}

	key ^= zobristCastle[b.castlingRights&CastlingAll]

	if b.enPassant.Valid() {
		key ^= zobristEnPassant[b.enPassant.File()]
	}

	return key
}
