package quickmg

import "fmt"

// Square represents a board position (0-63), rank*8 + file.
type Square int

const NoSquare Square = -1

// Named squares used by castling and the start position.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// NewSquare builds a square from a file (0 = a) and a rank (0 = "1").
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

func (s Square) File() int   { return int(s) % 8 }
func (s Square) Rank() int   { return int(s) / 8 }
func (s Square) Valid() bool { return s >= 0 && s < 64 }

// String returns the coordinate name, e.g. "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare converts a coordinate such as "e4" into a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", alg, ErrMalformedAlgebraic)
	}
	file := alg[0]
	rank := alg[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %q: %w", alg, ErrMalformedAlgebraic)
	}
	return NewSquare(int(file-'a'), int(rank-'1')), nil
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece kind.
type PieceType uint8

const (
	PieceTypeNone PieceType = 0
	Pawn          PieceType = 1
	Knight        PieceType = 2
	Bishop        PieceType = 3
	Rook          PieceType = 4
	Queen         PieceType = 5
	King          PieceType = 6
)

// PieceTypes lists the six real piece types in generation order.
var PieceTypes = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// promotionTypes is the order promotion choices are generated in.
var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// Piece is a colored piece. The low three bits hold the PieceType and bit 3 is
// set for Black, so piece&7 gives the type.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)
	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8
)

// NewPiece combines a side and a type.
func NewPiece(c Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	return Piece(pt) | Piece(c)<<3
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece reports White.
func (p Piece) Color() Color { return Color(p>>3) & 1 }

// String returns the FEN letter of the piece, uppercase for White.
func (p Piece) String() string { return string(charFromPiece(p)) }

// CastlingRights is a bit set of the four castling permissions.
type CastlingRights uint8

const (
	CastlingWhiteK CastlingRights = 1 << iota
	CastlingWhiteQ
	CastlingBlackK
	CastlingBlackQ

	CastlingNone CastlingRights = 0
	CastlingAll                 = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// CastleSide tells which way a castling move goes.
type CastleSide uint8

const (
	CastleNone CastleSide = iota
	CastleKingside
	CastleQueenside
)

// castleInfo is the fixed geometry of one castling move.
type castleInfo struct {
	right    CastlingRights
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	between  Bitboard // must be empty
	transit  Square   // square the king crosses
}

// castles is indexed by [color][side-1].
var castles = [2][2]castleInfo{
	{
		{CastlingWhiteK, E1, G1, H1, F1, SquareBB(F1) | SquareBB(G1), F1},
		{CastlingWhiteQ, E1, C1, A1, D1, SquareBB(B1) | SquareBB(C1) | SquareBB(D1), D1},
	},
	{
		{CastlingBlackK, E8, G8, H8, F8, SquareBB(F8) | SquareBB(G8), F8},
		{CastlingBlackQ, E8, C8, A8, D8, SquareBB(B8) | SquareBB(C8) | SquareBB(D8), D8},
	},
}

// rookHomeRights maps a rook's home corner to the right it carries.
var rookHomeRights = [64]CastlingRights{
	A1: CastlingWhiteQ,
	H1: CastlingWhiteK,
	A8: CastlingBlackQ,
	H8: CastlingBlackK,
}

// kingRights are the rights a side loses once its king moves.
var kingRights = [2]CastlingRights{
	CastlingWhiteK | CastlingWhiteQ,
	CastlingBlackK | CastlingBlackQ,
}
