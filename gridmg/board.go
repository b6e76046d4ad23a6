package gridmg

import "strings"

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// Flip returns the same kind of piece owned by the other side.
func (p Piece) Flip() Piece {
	if p == NoPiece {
		return NoPiece
	}
	return p ^ 8
}

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone || pt > PieceTypeKing {
		return NoPiece
	}
	if color == Black {
		return Piece(pt) | 8
	}
	return Piece(pt)
}

// pieceValues is indexed by piece code. NoPiece and the unused codes 7, 8
// and 15 are outside the table's domain.
var pieceValues = [16]int{
	WhitePawn:   1,
	WhiteKnight: 3,
	WhiteBishop: 3,
	WhiteRook:   5,
	WhiteQueen:  9,
	WhiteKing:   1000,
	BlackPawn:   -1,
	BlackKnight: -3,
	BlackBishop: -3,
	BlackRook:   -5,
	BlackQueen:  -9,
	BlackKing:   -1000,
}

// PieceValue looks up the signed material value of p. ok is false for the
// empty marker and for codes that are not one of the twelve pieces.
func PieceValue(p Piece) (v int, ok bool) {
	if p.Type() == PieceTypeNone || p.Type() > PieceTypeKing {
		return 0, false
	}
	return pieceValues[p], true
}

// Value returns the signed material value of p, 0 for empty squares.
func (p Piece) Value() int {
	v, _ := PieceValue(p)
	return v
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Square is a (row, column) grid coordinate. Row 0 is rank 8, column 0 is file a.
type Square struct {
	Row, Col int
}

// OnBoard reports whether both coordinates are in [0,7].
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// Board is the 8x8 grid of occupants plus the bookkeeping the move
// generator and the zobrist hash need. It carries no side to move; callers
// pass the side explicitly.
type Board struct {
	grid [8][8]Piece

	// Generation rules (zero value reproduces the reference move patterns)
	rules Rules

	// Zobrist hash key for the current placement
	zobristKey uint64
}

var backRank = [8]PieceType{
	PieceTypeRook, PieceTypeKnight, PieceTypeBishop, PieceTypeQueen,
	PieceTypeKing, PieceTypeBishop, PieceTypeKnight, PieceTypeRook,
}

// NewBoard returns a board set up in the standard starting layout.
func NewBoard() *Board {
	b := &Board{}
	for col, pt := range backRank {
		b.grid[0][col] = PieceFromType(Black, pt)
		b.grid[1][col] = BlackPawn
		b.grid[6][col] = WhitePawn
		b.grid[7][col] = PieceFromType(White, pt)
	}
	b.zobristKey = b.ComputeZobrist()
	return b
}

// EmptyBoard returns a board with no pieces on it.
func EmptyBoard() *Board {
	b := &Board{}
	b.zobristKey = b.ComputeZobrist()
	return b
}

// Reset puts the board back into the standard starting layout, keeping its rules.
func (b *Board) Reset() {
	rules := b.rules
	*b = *NewBoard()
	b.rules = rules
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.grid[sq.Row][sq.Col] }

// SetPiece sets a piece on a square, replacing any existing piece, and keeps the hash in sync.
func (b *Board) SetPiece(sq Square, p Piece) {
	if old := b.grid[sq.Row][sq.Col]; old != NoPiece {
		b.zobristKey ^= zobristPiece[old][squareIndex(sq)]
	}
	b.grid[sq.Row][sq.Col] = p
	if p != NoPiece {
		b.zobristKey ^= zobristPiece[p][squareIndex(sq)]
	}
}

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) { b.SetPiece(sq, NoPiece) }

// Grid returns a copy of the occupant grid for read-only consumers such as renderers.
func (b *Board) Grid() [8][8]Piece { return b.grid }

// Rules returns the generation rules in effect.
func (b *Board) Rules() Rules { return b.rules }

// SetRules changes the generation rules used by subsequent move generation.
func (b *Board) SetRules(r Rules) { b.rules = r }

// String renders the grid rank 8 first, with '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteByte('8' - byte(row))
		sb.WriteByte(' ')
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(charFromPiece(p))
			}
			if col < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// squareIndex maps a square to 0..63 in row-major order.
func squareIndex(sq Square) int { return sq.Row*8 + sq.Col }
