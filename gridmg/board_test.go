package gridmg_test

import (
	"strings"
	"testing"

	gm "minimax-chess/gridmg"
)

func TestNewBoardLayout(t *testing.T) {
	b := gm.NewBoard()
	grid := b.Grid()

	back := []gm.PieceType{
		gm.PieceTypeRook, gm.PieceTypeKnight, gm.PieceTypeBishop, gm.PieceTypeQueen,
		gm.PieceTypeKing, gm.PieceTypeBishop, gm.PieceTypeKnight, gm.PieceTypeRook,
	}
	for col, pt := range back {
		if got := grid[0][col]; got != gm.PieceFromType(gm.Black, pt) {
			t.Errorf("row 0 col %d: got %v want black %v", col, got, pt)
		}
		if got := grid[7][col]; got != gm.PieceFromType(gm.White, pt) {
			t.Errorf("row 7 col %d: got %v want white %v", col, got, pt)
		}
		if grid[1][col] != gm.BlackPawn || grid[6][col] != gm.WhitePawn {
			t.Errorf("col %d: pawns missing", col)
		}
		for row := 2; row < 6; row++ {
			if grid[row][col] != gm.NoPiece {
				t.Errorf("square (%d,%d) should be empty, got %v", row, col, grid[row][col])
			}
		}
	}
	if !b.Validate() {
		t.Fatalf("fresh board fails hash validation")
	}
}

func TestPieceValues(t *testing.T) {
	cases := []struct {
		p    gm.Piece
		want int
	}{
		{gm.WhitePawn, 1}, {gm.WhiteKnight, 3}, {gm.WhiteBishop, 3},
		{gm.WhiteRook, 5}, {gm.WhiteQueen, 9}, {gm.WhiteKing, 1000},
		{gm.BlackPawn, -1}, {gm.BlackKnight, -3}, {gm.BlackBishop, -3},
		{gm.BlackRook, -5}, {gm.BlackQueen, -9}, {gm.BlackKing, -1000},
	}
	for _, c := range cases {
		v, ok := gm.PieceValue(c.p)
		if !ok || v != c.want {
			t.Errorf("PieceValue(%d) = %d,%v want %d,true", c.p, v, ok, c.want)
		}
		if c.p.Flip().Value() != -c.want {
			t.Errorf("flipped %d should be worth %d", c.p, -c.want)
		}
	}
	if _, ok := gm.PieceValue(gm.NoPiece); ok {
		t.Errorf("empty marker must not be in the value table")
	}
	if gm.NoPiece.Value() != 0 || gm.NoPiece.Flip() != gm.NoPiece {
		t.Errorf("empty marker should be worth 0 and flip to itself")
	}
}

func TestGridIsSnapshot(t *testing.T) {
	b := gm.NewBoard()
	grid := b.Grid()
	grid[6][4] = gm.NoPiece
	if b.PieceAt(gm.Square{Row: 6, Col: 4}) != gm.WhitePawn {
		t.Fatalf("mutating the snapshot changed the board")
	}
}

func TestSetPieceKeepsHash(t *testing.T) {
	b := gm.EmptyBoard()
	b.SetPiece(gm.Square{Row: 3, Col: 3}, gm.WhiteQueen)
	b.SetPiece(gm.Square{Row: 3, Col: 3}, gm.BlackKnight)
	b.SetPiece(gm.Square{Row: 0, Col: 7}, gm.BlackKing)
	b.ClearSquare(gm.Square{Row: 0, Col: 7})
	if !b.Validate() {
		t.Fatalf("incremental hash drifted from recomputation")
	}
	if got := b.PieceAt(gm.Square{Row: 3, Col: 3}); got != gm.BlackKnight {
		t.Fatalf("d5: got %v want black knight", got)
	}
}

func TestBoardString(t *testing.T) {
	lines := strings.Split(gm.NewBoard().String(), "\n")
	if lines[0] != "8 r n b q k b n r" {
		t.Errorf("first rank: %q", lines[0])
	}
	if lines[4] != "4 . . . . . . . ." {
		t.Errorf("rank 4: %q", lines[4])
	}
	if lines[7] != "1 R N B Q K B N R" {
		t.Errorf("last rank: %q", lines[7])
	}
	if lines[8] != "  a b c d e f g h" {
		t.Errorf("file legend: %q", lines[8])
	}
}

func TestResetKeepsRules(t *testing.T) {
	b := gm.EmptyBoard()
	r := gm.Rules{NoSelfCapture: true}
	b.SetRules(r)
	b.Reset()
	if b.Rules() != r {
		t.Fatalf("Reset dropped rules")
	}
	if b.Grid() != gm.NewBoard().Grid() {
		t.Fatalf("Reset did not restore the starting layout")
	}
}
