package quickmg

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares. Bit i is set when square i is a member.
// Bit 0 = a1, bit 7 = h1, bit 56 = a8, bit 63 = h8.
type Bitboard uint64

// File masks
const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = 0x0202020202020202
	FileC Bitboard = 0x0404040404040404
	FileD Bitboard = 0x0808080808080808
	FileE Bitboard = 0x1010101010101010
	FileF Bitboard = 0x2020202020202020
	FileG Bitboard = 0x4040404040404040
	FileH Bitboard = 0x8080808080808080
)

// Rank masks
const (
	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = 0x000000000000FF00
	Rank3 Bitboard = 0x0000000000FF0000
	Rank4 Bitboard = 0x00000000FF000000
	Rank5 Bitboard = 0x000000FF00000000
	Rank6 Bitboard = 0x0000FF0000000000
	Rank7 Bitboard = 0x00FF000000000000
	Rank8 Bitboard = 0xFF00000000000000
)

const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	NotFileA  Bitboard = ^FileA
	NotFileH  Bitboard = ^FileH
	NotFileAB Bitboard = ^(FileA | FileB)
	NotFileGH Bitboard = ^(FileG | FileH)
)

// FileMask indexes file masks by file (0 = a).
var FileMask = [8]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// RankMask indexes rank masks by rank (0 = "1").
var RankMask = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// Direction is one of the eight compass steps on the board.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// SquareBB returns a bitboard holding only sq. Squares outside [0,64) give Empty.
func SquareBB(sq Square) Bitboard {
	if !sq.Valid() {
		return Empty
	}
	return 1 << uint(sq)
}

func (b Bitboard) Union(o Bitboard) Bitboard     { return b | o }
func (b Bitboard) Intersect(o Bitboard) Bitboard { return b & o }
func (b Bitboard) Xor(o Bitboard) Bitboard       { return b ^ o }
func (b Bitboard) Complement() Bitboard          { return ^b }

// Shift moves every member one step in dir. Members that would leave the board,
// including those that would wrap around to the opposite file, are dropped.
func (b Bitboard) Shift(dir Direction) Bitboard {
	switch dir {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b & NotFileH) << 1
	case West:
		return (b & NotFileA) >> 1
	case NorthEast:
		return (b & NotFileH) << 9
	case NorthWest:
		return (b & NotFileA) << 7
	case SouthEast:
		return (b & NotFileH) >> 7
	case SouthWest:
		return (b & NotFileA) >> 9
	}
	return Empty
}

// Shifted applies Shift n times. Each step is masked on its own, so a long
// shift never wraps either.
func (b Bitboard) Shifted(dir Direction, n int) Bitboard {
	for i := 0; i < n && b != 0; i++ {
		b = b.Shift(dir)
	}
	return b
}

// IsSet reports whether sq is a member.
func (b Bitboard) IsSet(sq Square) bool { return b&SquareBB(sq) != 0 }

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard { return b | SquareBB(sq) }

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ SquareBB(sq) }

// Count returns the number of members (population count).
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest member, or false for the empty set.
func (b Bitboard) LSB() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(bits.TrailingZeros64(uint64(b))), true
}

// MSB returns the highest member, or false for the empty set.
func (b Bitboard) MSB() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(63 - bits.LeadingZeros64(uint64(b))), true
}

// WithoutLSB returns b with its lowest member removed. Together with LSB it
// walks a set without touching the value held by the caller:
//
//	for bb := set; bb != 0; bb = bb.WithoutLSB() { sq, _ := bb.LSB(); ... }
func (b Bitboard) WithoutLSB() Bitboard { return b & (b - 1) }

// Squares lists the members in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for bb := b; bb != 0; {
		out = append(out, popLSB(&bb))
	}
	return out
}

// String draws the set as an 8x8 grid, rank 8 on top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// popLSB removes and returns the lowest member of *mask.
func popLSB(mask *Bitboard) Square {
	idx := bits.TrailingZeros64(uint64(*mask))
	*mask &= *mask - 1
	return Square(idx)
}
