package quickmg

import (
	"math/rand"
	"testing"
)

func TestLeaperTables(t *testing.T) {
	cases := []struct {
		name string
		got  Bitboard
		want Bitboard
	}{
		{"knight a1", KnightAttacks(A1), SquareBB(NewSquare(1, 2)) | SquareBB(NewSquare(2, 1))},
		{"knight h1", KnightAttacks(H1), SquareBB(NewSquare(6, 2)) | SquareBB(NewSquare(5, 1))},
		{"knight h8", KnightAttacks(H8), SquareBB(NewSquare(6, 5)) | SquareBB(NewSquare(5, 6))},
		{"king a1", KingAttacks(A1), SquareBB(B1) | SquareBB(NewSquare(0, 1)) | SquareBB(NewSquare(1, 1))},
		{"white pawn a2", PawnAttacks(White, NewSquare(0, 1)), SquareBB(NewSquare(1, 2))},
		{"black pawn h7", PawnAttacks(Black, NewSquare(7, 6)), SquareBB(NewSquare(6, 5))},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got\n%s\nwant\n%s", tc.name, tc.got, tc.want)
		}
	}
	if n := KnightAttacks(NewSquare(3, 3)).Count(); n != 8 {
		t.Fatalf("knight d4: got %d targets want 8", n)
	}
	if n := KingAttacks(NewSquare(3, 3)).Count(); n != 8 {
		t.Fatalf("king d4: got %d targets want 8", n)
	}
}

// stepwise recomputes slider attacks with the per-step walk only.
func stepwise(sq Square, occ Bitboard, dirs [4]Direction) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		attacks |= walkRay(sq, occ, d)
	}
	return attacks
}

func TestSliderRaysMatchWalk(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	iterations := 2000
	if testing.Short() {
		iterations = 200
	}
	for i := 0; i < iterations; i++ {
		// Sparse and dense occupancies both matter for blocker resolution.
		occ := Bitboard(rnd.Uint64() & rnd.Uint64())
		if i%2 == 1 {
			occ = Bitboard(rnd.Uint64() | rnd.Uint64())
		}
		for sq := Square(0); sq < 64; sq++ {
			if got, want := RookAttacks(sq, occ), stepwise(sq, occ, rookDirections); got != want {
				t.Fatalf("rook %s occ %#x: got %#x want %#x", sq, uint64(occ), uint64(got), uint64(want))
			}
			if got, want := BishopAttacks(sq, occ), stepwise(sq, occ, bishopDirections); got != want {
				t.Fatalf("bishop %s occ %#x: got %#x want %#x", sq, uint64(occ), uint64(got), uint64(want))
			}
		}
	}
}

func TestRookOnEmptyBoard(t *testing.T) {
	if n := RookAttacks(H1, Empty).Count(); n != 14 {
		t.Fatalf("rook h1: got %d targets want 14", n)
	}
	if RookAttacks(H1, Empty).IsSet(NewSquare(0, 1)) {
		t.Fatalf("rook h1 wrapped onto a2")
	}
	if n := BishopAttacks(NewSquare(3, 3), Empty).Count(); n != 13 {
		t.Fatalf("bishop d4: got %d targets want 13", n)
	}
	if QueenAttacks(A1, Empty) != RookAttacks(A1, Empty)|BishopAttacks(A1, Empty) {
		t.Fatalf("queen attacks are not the rook/bishop union")
	}
}
