package quickmg

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Move encodes a chess move in a 32-bit value. It is built by the move
// generator and never changed afterwards; two moves are equal when their
// values are.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePieceShift   = 12 // 3 bits
	moveCaptureShift = 15 // 3 bits
	movePromoteShift = 18 // 3 bits
	moveFlagShift    = 21 // 3 bits
)

// MoveFlag marks special moves.
type MoveFlag uint8

const (
	FlagNone        MoveFlag = 0
	FlagEnPassant   MoveFlag = 1
	FlagCastleKing  MoveFlag = 2
	FlagCastleQueen MoveFlag = 4
	flagMask        MoveFlag = 7
)

// NullMove is the zero value; it is never generated.
const NullMove Move = 0

// NewMove constructs a Move value from components. Use PieceTypeNone for
// captured or promotion when there is none.
func NewMove(from, to Square, piece, captured, promotion PieceType, flag MoveFlag) Move {
	m := uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(piece&7) << movePieceShift) |
		(uint32(captured&7) << moveCaptureShift) |
		(uint32(promotion&7) << movePromoteShift) |
		(uint32(flag&flagMask) << moveFlagShift)
	return Move(m)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// Piece returns the type of the moving piece.
func (m Move) Piece() PieceType { return PieceType((uint32(m) >> movePieceShift) & 7) }

// Captured returns the type of the captured piece, if the move captures.
// For en passant this is Pawn even though the destination is empty.
func (m Move) Captured() (PieceType, bool) {
	pt := PieceType((uint32(m) >> moveCaptureShift) & 7)
	return pt, pt != PieceTypeNone
}

// Promotion returns the piece type a pawn turns into, if the move promotes.
func (m Move) Promotion() (PieceType, bool) {
	pt := PieceType((uint32(m) >> movePromoteShift) & 7)
	return pt, pt != PieceTypeNone
}

// Flags returns the special move flags.
func (m Move) Flags() MoveFlag { return MoveFlag((uint32(m) >> moveFlagShift)) & flagMask }

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool {
	_, ok := m.Captured()
	return ok
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Flags()&FlagEnPassant != 0 }

// Castle reports which way the move castles, or CastleNone.
func (m Move) Castle() CastleSide {
	switch {
	case m.Flags()&FlagCastleKing != 0:
		return CastleKingside
	case m.Flags()&FlagCastleQueen != 0:
		return CastleQueenside
	}
	return CastleNone
}

// String produces coordinate notation: from and to squares plus a lowercase
// promotion letter, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	str := m.From().String() + m.To().String()
	if promo, ok := m.Promotion(); ok {
		str += string(charFromPiece(NewPiece(Black, promo)))
	}
	return str
}

// ParseMove reads coordinate notation and resolves it against the pseudo-legal
// moves of b. Text that is not two squares plus an optional promotion letter
// yields ErrMalformedAlgebraic; text that names no generated move yields
// ErrIllegalMove.
func ParseMove(text string, b Board) (Move, error) {
	movestr := strings.ToLower(strings.TrimSpace(text))
	if len(movestr) < 4 || len(movestr) > 5 {
		return NullMove, fmt.Errorf("move %q: %w", text, ErrMalformedAlgebraic)
	}
	from, err := ParseSquare(movestr[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("move %q: %w", text, ErrMalformedAlgebraic)
	}
	to, err := ParseSquare(movestr[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("move %q: %w", text, ErrMalformedAlgebraic)
	}
	promo := PieceTypeNone
	if len(movestr) == 5 {
		switch movestr[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return NullMove, fmt.Errorf("move %q: invalid promotion piece: %w", text, ErrMalformedAlgebraic)
		}
	}

	moves := b.PseudoLegalMoves()
	idx := slices.IndexFunc(moves, func(m Move) bool {
		p, _ := m.Promotion()
		return m.From() == from && m.To() == to && p == promo
	})
	if idx < 0 {
		return NullMove, fmt.Errorf("move %q in %s: %w", text, b.FEN(), ErrIllegalMove)
	}
	return moves[idx], nil
}
