package gridmg

import "golang.org/x/exp/slices"

// Rules toggles the two places where the reference move patterns differ from
// chess. The zero value keeps the reference behaviour, which generated-move
// counts in tests depend on.
type Rules struct {
	// NoSelfCapture drops pawn-diagonal, knight and king targets holding a
	// piece of the moving side. Off, those targets are emitted whenever the
	// offset lands on the board (pawn diagonals additionally need an occupant).
	NoSelfCapture bool

	// SlidingCaptures lets bishops, rooks and queens stop on the first
	// blocking square when it holds an opposing piece. Off, sliders never capture.
	SlidingCaptures bool
}

// Offsets are (row, col) deltas; row decreases toward rank 8.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Rook directions: N, S, E, W
var rookDirections = [][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}

// Bishop directions: NE, NW, SE, SW
var bishopDirections = [][2]int{{-1, 1}, {-1, -1}, {1, 1}, {1, -1}}

var queenDirections = append(append([][2]int{}, rookDirections...), bishopDirections...)

type pieceGen func(b *Board, dst []Move, from Square, side Color) []Move

// generators dispatches on PieceType.
var generators = [7]pieceGen{
	PieceTypePawn:   genPawn,
	PieceTypeKnight: genKnight,
	PieceTypeBishop: func(b *Board, dst []Move, from Square, side Color) []Move { return b.genSliding(dst, from, side, bishopDirections) },
	PieceTypeRook:   func(b *Board, dst []Move, from Square, side Color) []Move { return b.genSliding(dst, from, side, rookDirections) },
	PieceTypeQueen:  func(b *Board, dst []Move, from Square, side Color) []Move { return b.genSliding(dst, from, side, queenDirections) },
	PieceTypeKing:   genKing,
}

// pawnDirection is the row delta of a pawn step: white advances toward row 0.
func pawnDirection(side Color) int {
	if side == White {
		return -1
	}
	return 1
}

// GenerateMoves returns the pseudo-legal moves for side in row-major scan order.
func (b *Board) GenerateMoves(side Color) []Move {
	return b.GenerateMovesInto(make([]Move, 0, 64), side)
}

// GenerateMovesInto appends side's pseudo-legal moves to dst and returns it.
func (b *Board) GenerateMovesInto(dst []Move, side Color) []Move {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == NoPiece || p.Color() != side {
				continue
			}
			gen := generators[p.Type()]
			if gen == nil {
				continue
			}
			dst = gen(b, dst, Square{row, col}, side)
		}
	}
	return dst
}

// IsPseudoLegal reports whether m is among side's generated moves.
func (b *Board) IsPseudoLegal(side Color, m Move) bool {
	if !m.OnBoard() {
		return false
	}
	return slices.Contains(b.GenerateMoves(side), m)
}

// stepTarget reports whether a knight/king/pawn-diagonal target may be emitted
// under the board's rules.
func (b *Board) stepTarget(to Square, side Color) bool {
	if !b.rules.NoSelfCapture {
		return true
	}
	p := b.grid[to.Row][to.Col]
	return p == NoPiece || p.Color() != side
}

func genPawn(b *Board, dst []Move, from Square, side Color) []Move {
	dir := pawnDirection(side)

	// Single step only, onto an empty square
	fwd := Square{from.Row + dir, from.Col}
	if fwd.OnBoard() && b.grid[fwd.Row][fwd.Col] == NoPiece {
		dst = append(dst, Move{from, fwd})
	}

	// Diagonals need an occupant; its owner is not checked unless NoSelfCapture is set
	for _, dc := range [2]int{-1, 1} {
		to := Square{from.Row + dir, from.Col + dc}
		if !to.OnBoard() || b.grid[to.Row][to.Col] == NoPiece {
			continue
		}
		if b.stepTarget(to, side) {
			dst = append(dst, Move{from, to})
		}
	}
	return dst
}

func genKnight(b *Board, dst []Move, from Square, side Color) []Move {
	return b.genOffsets(dst, from, side, knightOffsets[:])
}

func genKing(b *Board, dst []Move, from Square, side Color) []Move {
	return b.genOffsets(dst, from, side, kingOffsets[:])
}

func (b *Board) genOffsets(dst []Move, from Square, side Color, offsets [][2]int) []Move {
	for _, off := range offsets {
		to := Square{from.Row + off[0], from.Col + off[1]}
		if to.OnBoard() && b.stepTarget(to, side) {
			dst = append(dst, Move{from, to})
		}
	}
	return dst
}

func (b *Board) genSliding(dst []Move, from Square, side Color, dirs [][2]int) []Move {
	for _, d := range dirs {
		to := Square{from.Row + d[0], from.Col + d[1]}
		for to.OnBoard() {
			p := b.grid[to.Row][to.Col]
			if p != NoPiece {
				if b.rules.SlidingCaptures && p.Color() != side {
					dst = append(dst, Move{from, to})
				}
				break
			}
			dst = append(dst, Move{from, to})
			to = Square{to.Row + d[0], to.Col + d[1]}
		}
	}
	return dst
}
