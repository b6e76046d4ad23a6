package gridmg

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// FromDragontooth copies the placement of a dragontoothmg board onto a new
// grid board and reports its side to move.
func FromDragontooth(db *dragontoothmg.Board) (*Board, Color) {
	b := &Board{}
	place := func(bb uint64, p Piece) {
		for bb != 0 {
			sq := bits.TrailingZeros64(bb)
			bb &= bb - 1
			// dragontooth squares run a1=0 .. h8=63
			b.grid[7-sq/8][sq%8] = p
		}
	}
	for _, side := range [2]struct {
		bbs   *dragontoothmg.Bitboards
		color Color
	}{{&db.White, White}, {&db.Black, Black}} {
		place(side.bbs.Pawns, PieceFromType(side.color, PieceTypePawn))
		place(side.bbs.Knights, PieceFromType(side.color, PieceTypeKnight))
		place(side.bbs.Bishops, PieceFromType(side.color, PieceTypeBishop))
		place(side.bbs.Rooks, PieceFromType(side.color, PieceTypeRook))
		place(side.bbs.Queens, PieceFromType(side.color, PieceTypeQueen))
		place(side.bbs.Kings, PieceFromType(side.color, PieceTypeKing))
	}
	b.zobristKey = b.ComputeZobrist()
	side := White
	if !db.Wtomove {
		side = Black
	}
	return b, side
}

// Dragontooth converts the placement into a dragontoothmg board with side to move.
func (b *Board) Dragontooth(side Color) dragontoothmg.Board {
	return dragontoothmg.ParseFen(b.ToFEN(side))
}

// KingCount returns how many kings side has on the board. Nothing limits it to one.
func (b *Board) KingCount(side Color) int {
	king := PieceFromType(side, PieceTypeKing)
	n := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if b.grid[row][col] == king {
				n++
			}
		}
	}
	return n
}

// LegalUnderChessRules reports whether m would also be legal in standard chess
// (own-king safety, no self captures). Positions without exactly one king per
// side are outside what dragontoothmg can analyse and report false.
func (b *Board) LegalUnderChessRules(side Color, m Move) bool {
	if !m.OnBoard() || b.KingCount(White) != 1 || b.KingCount(Black) != 1 {
		return false
	}
	db := b.Dragontooth(side)
	want := m.String()
	for _, lm := range db.GenerateLegalMoves() {
		// Promotions carry a trailing piece letter
		if s := lm.String(); len(s) >= 4 && s[:4] == want {
			return true
		}
	}
	return false
}
