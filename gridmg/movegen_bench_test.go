package gridmg_test

import (
	"testing"

	gm "minimax-chess/gridmg"
)

func benchGenerateMoves(b *testing.B, fen string) {
	board, side, err := gm.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	buf := make([]gm.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.GenerateMovesInto(buf, side)
		buf = buf[:0]
	}
}

func BenchmarkGenerateMoves_Initial(b *testing.B) {
	benchGenerateMoves(b, gm.FENStartPos)
}

func BenchmarkGenerateMoves_Kiwipete(b *testing.B) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	benchGenerateMoves(b, fen)
}

func BenchmarkMakeUnmake_AllMoves_Initial(b *testing.B) {
	board := gm.NewBoard()
	moves := board.GenerateMoves(gm.White)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			captured := board.MakeMove(m)
			board.UnmakeMove(m, captured)
		}
	}
}

func BenchmarkPerft3_Initial(b *testing.B) {
	board := gm.NewBoard()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gm.Perft(board, gm.White, 3)
	}
}
