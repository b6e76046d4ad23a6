package gridmg_test

import (
	"errors"
	"testing"

	gm "minimax-chess/gridmg"
)

func TestParseFENStartPos(t *testing.T) {
	b, side, err := gm.ParseFEN(gm.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	if side != gm.White {
		t.Fatalf("side: got %v want white", side)
	}
	if b.Grid() != gm.NewBoard().Grid() {
		t.Fatalf("placement differs from NewBoard:\n%s", b)
	}
	if b.Hash() != gm.NewBoard().Hash() {
		t.Fatalf("hash differs from NewBoard")
	}
}

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"7k/8/5n2/3r4/b7/2N5/8/K7 b - - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	} {
		b, side, err := gm.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.ToFEN(side); got != fen {
			t.Errorf("round trip: got %q want %q", got, fen)
		}
	}
}

func TestParseFENSideOptional(t *testing.T) {
	_, side, err := gm.ParseFEN("8/8/8/8/8/8/8/8")
	if err != nil || side != gm.White {
		t.Fatalf("got %v, %v", side, err)
	}
	_, side, err = gm.ParseFEN("8/8/8/8/8/8/8/8 b")
	if err != nil || side != gm.Black {
		t.Fatalf("got %v, %v", side, err)
	}
}

func TestParseFENErrors(t *testing.T) {
	for _, fen := range []string{
		"",
		"8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8/9 w",
		"8/8/8/8/8/8/8/7 w",
		"8/8/8/8/8/8/8/ppppppppp w",
		"8/8/8/8/8/8/8/7x w",
		"8/8/8/8/8/8//8 w",
		"8/8/8/8/8/8/8/8 x",
	} {
		if _, _, err := gm.ParseFEN(fen); !errors.Is(err, gm.ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q): err = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestMustParseFENPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	gm.MustParseFEN("not a fen")
}
