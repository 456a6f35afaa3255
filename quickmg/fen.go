package quickmg

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// charFromPiece converts a Piece constant to its FEN character representation.
func charFromPiece(p Piece) rune {
	const letters = "?PNBRQK"
	t := p.Type()
	if p == NoPiece || t > King {
		return '?'
	}
	ch := rune(letters[t])
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return ch
}

func fenError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedFEN, fmt.Sprintf(format, args...))
}

// ParseFEN parses a FEN record. The half-move clock and full-move number may
// be omitted and then default to 0 and 1.
func ParseFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return Board{}, fenError("want 4 to 6 fields, got %d", len(fields))
	}

	board := EmptyBoard()

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Board{}, fenError("want 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return Board{}, fenError("unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return Board{}, fenError("too many squares in rank %d", rank+1)
			}
			board.addPiece(NewSquare(file, rank), piece)
			file++
		}
		if file != 8 {
			return Board{}, fenError("rank %d does not have 8 columns", rank+1)
		}
	}
	if board.Pawns()&(Rank1|Rank8) != 0 {
		return Board{}, fenError("pawn on the first or last rank")
	}
	for _, c := range [2]Color{White, Black} {
		if n := board.PiecesOf(c, King).Count(); n != 1 {
			return Board{}, fenError("%s has %d kings", c, n)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
	case "b":
		board = board.WithSideToMove(Black)
	default:
		return Board{}, fenError("side to move must be 'w' or 'b', got %q", fields[1])
	}

	// 3. Castling rights
	var cr CastlingRights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				cr |= CastlingWhiteK
			case 'Q':
				cr |= CastlingWhiteQ
			case 'k':
				cr |= CastlingBlackK
			case 'q':
				cr |= CastlingBlackQ
			default:
				return Board{}, fenError("invalid castling rights character %q", ch)
			}
		}
	}
	board.setCastlingRights(cr)

	// 4. En passant target square
	if fields[3] != "-" {
		ep, err := ParseSquare(fields[3])
		if err != nil {
			return Board{}, fenError("invalid en passant square %q", fields[3])
		}
		// The pawn that just double-pushed stands behind the target.
		rank, behind := 5, ep-8
		if board.sideToMove == Black {
			rank, behind = 2, ep+8
		}
		if ep.Rank() != rank {
			return Board{}, fenError("en passant square %s not on rank %d for %s to move", ep, rank+1, board.sideToMove)
		}
		if board.Occupied().IsSet(ep) || !board.PiecesOf(board.sideToMove.Other(), Pawn).IsSet(behind) {
			return Board{}, fenError("en passant square %s has no enemy pawn behind it", ep)
		}
		board.setEnPassant(ep)
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil || halfmove < 0 {
			return Board{}, fenError("halfmove clock %q is not a non-negative number", fields[4])
		}
		board.halfmoveClock = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil || fullmove < 1 {
			return Board{}, fenError("fullmove number %q is not a positive number", fields[5])
		}
		board.fullmoveNumber = fullmove
	}

	return board, nil
}

// MustParseFEN is ParseFEN for trusted literals; it panics on error.
func MustParseFEN(fen string) Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// FEN produces the FEN string representation of the board's current state.
func (b Board) FEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			p, ok := b.PieceAt(NewSquare(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteRune(charFromPiece(p))
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castlingRights&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if b.castlingRights&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if b.castlingRights&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if b.castlingRights&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	// 4. En passant square
	sb.WriteString(b.enPassant.String())
	sb.WriteByte(' ')

	// 5. Halfmove clock
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')

	// 6. Fullmove number
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}

// setCastlingRights replaces the rights and keeps the Zobrist key in step.
func (b *Board) setCastlingRights(cr CastlingRights) {
	cr &= CastlingAll
	if cr == b.castlingRights {
		return
	}
	b.zobristKey ^= zobristCastle[b.castlingRights]
	b.zobristKey ^= zobristCastle[cr]
	b.castlingRights = cr
}

// setEnPassant replaces the en-passant target and keeps the Zobrist key in step.
func (b *Board) setEnPassant(sq Square) {
	if b.enPassant.Valid() {
		b.zobristKey ^= zobristEnPassant[b.enPassant.File()]
	}
	if !sq.Valid() {
		sq = NoSquare
	}
	b.enPassant = sq
	if sq.Valid() {
		b.zobristKey ^= zobristEnPassant[sq.File()]
	}
}
