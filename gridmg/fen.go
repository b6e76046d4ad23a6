package gridmg

import (
	"errors"
	"fmt"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped by every ParseFEN failure.
var ErrInvalidFEN = errors.New("invalid FEN")

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
	switch p {
	case WhitePawn:
		return 'P'
	case WhiteKnight:
		return 'N'
	case WhiteBishop:
		return 'B'
	case WhiteRook:
		return 'R'
	case WhiteQueen:
		return 'Q'
	case WhiteKing:
		return 'K'
	case BlackPawn:
		return 'p'
	case BlackKnight:
		return 'n'
	case BlackBishop:
		return 'b'
	case BlackRook:
		return 'r'
	case BlackQueen:
		return 'q'
	case BlackKing:
		return 'k'
	default:
		return '?' // should not happen for valid pieces
	}
}

// ParseFEN parses the placement and side-to-move fields of a FEN string.
// Castling, en passant and the clocks are accepted but ignored; the side
// defaults to White when the field is missing.
func ParseFEN(fen string) (*Board, Color, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, White, fmt.Errorf("%w: empty string", ErrInvalidFEN)
	}

	board := &Board{}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, White, fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	// FEN lists rank 8 first, which is row 0
	for row, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, White, fmt.Errorf("%w: empty rank description", ErrInvalidFEN)
		}
		col := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, White, fmt.Errorf("%w: unrecognized piece character %q", ErrInvalidFEN, ch)
			}
			if col >= 8 {
				return nil, White, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, 8-row)
			}
			board.grid[row][col] = piece
			col++
		}
		if col != 8 {
			return nil, White, fmt.Errorf("%w: rank %d does not have 8 columns", ErrInvalidFEN, 8-row)
		}
	}

	side := White
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
		case "b":
			side = Black
		default:
			return nil, White, fmt.Errorf("%w: side to move must be 'w' or 'b'", ErrInvalidFEN)
		}
	}

	board.zobristKey = board.ComputeZobrist()
	return board, side, nil
}

// MustParseFEN is ParseFEN that panics on invalid input.
func MustParseFEN(fen string) *Board {
	b, _, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// ToFEN produces a FEN string for the placement with the given side to move.
// No castling or en passant state is tracked, so those fields are always "-".
func (b *Board) ToFEN(side Color) string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		emptyCount := 0
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == NoPiece {
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
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	if side == White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}
