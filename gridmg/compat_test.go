package gridmg_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	gm "minimax-chess/gridmg"
)

func TestFromDragontooth(t *testing.T) {
	db := dragontoothmg.ParseFen("7k/8/5n2/3r4/b7/2N5/8/K7 b - - 0 1")
	b, side := gm.FromDragontooth(&db)
	if side != gm.Black {
		t.Fatalf("side: got %v want black", side)
	}
	want := mustParse(t, "7k/8/5n2/3r4/b7/2N5/8/K7 b - - 0 1")
	if b.Grid() != want.Grid() {
		t.Fatalf("placement mismatch:\n%s\nwant\n%s", b, want)
	}
	if !b.Validate() {
		t.Fatalf("hash not initialised")
	}

	start := dragontoothmg.ParseFen(gm.FENStartPos)
	sb, sside := gm.FromDragontooth(&start)
	if sside != gm.White || sb.Grid() != gm.NewBoard().Grid() {
		t.Fatalf("start position did not survive conversion")
	}
}

// With self captures disabled every generated start move is a real chess
// move; dragontooth additionally knows the double steps.
func TestStartMovesAgainstDragontooth(t *testing.T) {
	b := gm.NewBoard()
	b.SetRules(gm.Rules{NoSelfCapture: true})

	db := b.Dragontooth(gm.White)
	var legal []string
	for _, m := range db.GenerateLegalMoves() {
		legal = append(legal, m.String())
	}
	if len(legal) != 20 {
		t.Fatalf("dragontooth: got %d legal moves want 20", len(legal))
	}

	ours := moveStrings(b.GenerateMoves(gm.White))
	for _, m := range ours {
		if !slices.Contains(legal, m) {
			t.Errorf("%s generated but not legal", m)
		}
	}
	if !slices.Contains(legal, "e2e4") || slices.Contains(ours, "e2e4") {
		t.Errorf("double step should only exist under full chess rules")
	}
}

func TestLegalUnderChessRules(t *testing.T) {
	b := gm.NewBoard()
	cases := []struct {
		move string
		want bool
	}{
		{"e2e3", true},
		{"g1f3", true},
		{"e1d1", false}, // king onto own queen
		{"b1d2", false}, // knight onto own pawn
		{"e2e4", true},  // legal in chess, not generated here
	}
	for _, c := range cases {
		if got := b.LegalUnderChessRules(gm.White, gm.DecodeMove(c.move)); got != c.want {
			t.Errorf("%s: got %v want %v", c.move, got, c.want)
		}
	}
	if b.LegalUnderChessRules(gm.White, gm.NoMove) {
		t.Errorf("NoMove reported legal")
	}

	kingless := mustParse(t, "8/8/8/8/8/8/4P3/8 w - - 0 1")
	if kingless.LegalUnderChessRules(gm.White, gm.DecodeMove("e2e3")) {
		t.Errorf("kingless positions are outside dragontooth's model")
	}
	if kingless.KingCount(gm.White) != 0 || b.KingCount(gm.Black) != 1 {
		t.Errorf("KingCount miscounted")
	}
}
