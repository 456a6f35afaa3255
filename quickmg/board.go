package quickmg

import (
	"fmt"
	"strings"
)

// Board represents the chess board state, including piece placement and game state.
// It is a plain value: copying it gives an independent position, and Apply
// returns a new Board rather than changing the one it was given.
type Board struct {
	// Piece bitboards indexed by PieceType, each the union over both colors.
	// Index 0 (PieceTypeNone) is always empty.
	pieces [7]Bitboard

	// Occupancy bitboards for each side (index 0 = white, 1 = black)
	colors [2]Bitboard

	// Side to move (which player's turn it is)
	sideToMove Color

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castlingRights CastlingRights

	// En passant target square (if a pawn moved two steps last move, otherwise NoSquare)
	enPassant Square

	// Halfmove clock (number of half-moves since last capture or pawn advance, for 50-move rule)
	halfmoveClock int

	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int

	// Zobrist hash key for the current position
	zobristKey uint64
}

// initialLayout is the start position, one row per piece type.
var initialLayout = [...]struct {
	pt           PieceType
	white, black Bitboard
}{
	{Pawn, 0x000000000000FF00, 0x00FF000000000000},
	{Knight, 0x0000000000000042, 0x4200000000000000},
	{Bishop, 0x0000000000000024, 0x2400000000000000},
	{Rook, 0x0000000000000081, 0x8100000000000000},
	{Queen, 0x0000000000000008, 0x0800000000000000},
	{King, 0x0000000000000010, 0x1000000000000000},
}

var initialBoard Board

func init() {
	b := EmptyBoard()
	for _, row := range initialLayout {
		b.pieces[row.pt] = row.white | row.black
		b.colors[White] |= row.white
		b.colors[Black] |= row.black
	}
	b.castlingRights = CastlingAll
	b.zobristKey = b.ComputeZobrist()
	if err := b.Validate(); err != nil {
		panic(err)
	}
	initialBoard = b
}

// Initial returns the standard starting position.
func Initial() Board { return initialBoard }

// EmptyBoard returns a board with no pieces, White to move, no castling rights
// and no en-passant target.
func EmptyBoard() Board {
	b := Board{enPassant: NoSquare, fullmoveNumber: 1}
	b.zobristKey = b.ComputeZobrist()
	return b
}

// WithPiece returns a copy of b with p placed on sq, replacing whatever stood
// there. NoPiece empties the square. Castling rights and the en-passant target
// are left as they are.
func (b Board) WithPiece(sq Square, p Piece) Board {
	b.removePiece(sq)
	b.addPiece(sq, p)
	return b
}

// WithSideToMove returns a copy of b with c to move.
func (b Board) WithSideToMove(c Color) Board {
	if b.sideToMove != c {
		b.sideToMove = c
		b.zobristKey ^= zobristSide
	}
	return b
}

// ==========================
// Queries
// ==========================

// PieceTypeAt returns the type of the piece on sq, if any.
func (b Board) PieceTypeAt(sq Square) (PieceType, bool) {
	bit := SquareBB(sq)
	if bit&(b.colors[White]|b.colors[Black]) == 0 {
		return PieceTypeNone, false
	}
	for _, pt := range PieceTypes {
		if b.pieces[pt]&bit != 0 {
			return pt, true
		}
	}
	return PieceTypeNone, false
}

// ColorAt returns the owner of the piece on sq, if any.
func (b Board) ColorAt(sq Square) (Color, bool) {
	bit := SquareBB(sq)
	switch {
	case b.colors[White]&bit != 0:
		return White, true
	case b.colors[Black]&bit != 0:
		return Black, true
	}
	return White, false
}

// PieceAt returns the piece on sq, if any.
func (b Board) PieceAt(sq Square) (Piece, bool) {
	pt, okType := b.PieceTypeAt(sq)
	c, okColor := b.ColorAt(sq)
	if !okType || !okColor {
		return NoPiece, false
	}
	return NewPiece(c, pt), true
}

// Pieces returns the squares holding pt, both colors.
func (b Board) Pieces(pt PieceType) Bitboard {
	if pt > King {
		return Empty
	}
	return b.pieces[pt]
}

// PiecesOf returns the squares holding pt for side c.
func (b Board) PiecesOf(c Color, pt PieceType) Bitboard { return b.Pieces(pt) & b.colors[c&1] }

func (b Board) Pawns() Bitboard   { return b.pieces[Pawn] }
func (b Board) Knights() Bitboard { return b.pieces[Knight] }
func (b Board) Bishops() Bitboard { return b.pieces[Bishop] }
func (b Board) Rooks() Bitboard   { return b.pieces[Rook] }
func (b Board) Queens() Bitboard  { return b.pieces[Queen] }
func (b Board) Kings() Bitboard   { return b.pieces[King] }

// ByColor returns all squares occupied by side c.
func (b Board) ByColor(c Color) Bitboard { return b.colors[c&1] }

func (b Board) White() Bitboard { return b.colors[White] }
func (b Board) Black() Bitboard { return b.colors[Black] }

// Occupied returns every occupied square.
func (b Board) Occupied() Bitboard { return b.colors[White] | b.colors[Black] }

// EmptySquares returns every unoccupied square.
func (b Board) EmptySquares() Bitboard { return ^b.Occupied() }

// SideToMove reports which side is to play.
func (b Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the castling permissions still held.
func (b Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassant returns the en-passant target square or NoSquare.
func (b Board) EnPassant() Square { return b.enPassant }

// HalfmoveClock returns the number of half-moves since the last capture or pawn move.
func (b Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b Board) FullmoveNumber() int { return b.fullmoveNumber }

// Hash returns the current Zobrist hash key.
func (b Board) Hash() uint64 { return b.zobristKey }

// kingSquare returns the square of c's king, or NoSquare.
func (b Board) kingSquare(c Color) Square {
	sq, _ := b.PiecesOf(c, King).LSB()
	return sq
}

// ==========================
// Placement helpers
// ==========================

// addPiece places a piece on an empty square and updates bitboards and zobrist.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece || p.Type() > King || !sq.Valid() {
		return
	}
	bit := SquareBB(sq)
	b.pieces[p.Type()] |= bit
	b.colors[p.Color()] |= bit
	b.zobristKey ^= zobristPiece[p][sq]
}

// removePiece clears a square and returns what stood there.
func (b *Board) removePiece(sq Square) Piece {
	p, ok := b.PieceAt(sq)
	if !ok {
		return NoPiece
	}
	mask := ^SquareBB(sq)
	b.pieces[p.Type()] &= mask
	b.colors[p.Color()] &= mask
	b.zobristKey ^= zobristPiece[p][sq]
	return p
}

// ==========================
// Consistency
// ==========================

// Validate checks that every square is held by at most one piece type and at
// most one color, that typed and colored squares coincide, and that the
// Zobrist key matches the position.
func (b Board) Validate() error {
	if b.pieces[PieceTypeNone] != 0 {
		return &InvariantError{Check: "squares set in the PieceTypeNone bitboard"}
	}
	var typed Bitboard
	for _, pt := range PieceTypes {
		if overlap := typed & b.pieces[pt]; overlap != 0 {
			sq, _ := overlap.LSB()
			return &InvariantError{Check: fmt.Sprintf("%s on %s overlaps another piece type", pt, sq)}
		}
		typed |= b.pieces[pt]
	}
	if overlap := b.colors[White] & b.colors[Black]; overlap != 0 {
		sq, _ := overlap.LSB()
		return &InvariantError{Check: fmt.Sprintf("%s is set for both colors", sq)}
	}
	if diff := typed ^ b.Occupied(); diff != 0 {
		sq, _ := diff.LSB()
		return &InvariantError{Check: fmt.Sprintf("%s has a type without a color or a color without a type", sq)}
	}
	if b.enPassant != NoSquare && !b.enPassant.Valid() {
		return &InvariantError{Check: fmt.Sprintf("en-passant square %d out of range", int(b.enPassant))}
	}
	if b.zobristKey != b.ComputeZobrist() {
		return &InvariantError{Check: "zobrist key does not match position"}
	}
	return nil
}

// String draws the position with FEN letters, rank 8 on top, followed by the FEN.
func (b Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if p, ok := b.PieceAt(NewSquare(file, rank)); ok {
				sb.WriteRune(charFromPiece(p))
			} else {
				sb.WriteByte('.')
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	sb.WriteString(b.FEN())
	return sb.String()
}
