package engine

import (
	"time"

	"github.com/rs/zerolog"

	gm "minimax-chess/gridmg"
)

// DefaultDepth is the search depth in plies, counting the root ply.
const DefaultDepth = 2

// Options configures a Searcher.
type Options struct {
	// Depth in plies including the root move; values below 1 search one ply.
	Depth int

	// Logger receives per-move debug output. The zero value discards everything.
	Logger zerolog.Logger
}

// Result is the outcome of one root search.
type Result struct {
	Move    gm.Move
	Score   int
	Found   bool
	Nodes   uint64
	Elapsed time.Duration
}

// Searcher runs fixed-depth minimax over a borrowed board. It is not safe for
// concurrent use; give each goroutine its own Searcher and board clone.
type Searcher struct {
	depth int
	log   zerolog.Logger
	nodes uint64
}

// NewSearcher builds a Searcher from opts.
func NewSearcher(opts Options) *Searcher {
	depth := opts.Depth
	if depth < 1 {
		depth = 1
	}
	return &Searcher{depth: depth, log: opts.Logger}
}

// Depth returns the configured search depth in plies.
func (s *Searcher) Depth() int { return s.depth }

// Nodes returns the number of positions visited by the last search.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// sideFor maps the maximizing flag to a side: White maximizes.
func sideFor(maximizing bool) gm.Color {
	if maximizing {
		return gm.White
	}
	return gm.Black
}

// Minimax scores the position depth plies deep. At depth 0, or when the side
// implied by maximizing has no moves, it returns the static evaluation.
// The board is restored before returning.
func (s *Searcher) Minimax(b *gm.Board, depth int, maximizing bool) int {
	s.nodes++
	if depth <= 0 {
		return Evaluate(b)
	}
	moves := b.GenerateMoves(sideFor(maximizing))
	if len(moves) == 0 {
		return Evaluate(b)
	}

	var best int
	found := false
	for _, m := range moves {
		undo := b.Apply(m)
		score := s.Minimax(b, depth-1, !maximizing)
		undo()

		switch {
		case !found:
			best, found = score, true
		case maximizing:
			best = max(best, score)
		default:
			best = min(best, score)
		}
	}
	return best
}

// Search picks side's best move: each root candidate is applied and scored
// with Minimax one ply shallower. Ties keep the earliest candidate in
// generator order.
func (s *Searcher) Search(b *gm.Board, side gm.Color) Result {
	start := time.Now()
	s.nodes = 0

	maximizing := side == gm.White
	res := Result{Move: gm.NoMove}
	for _, m := range b.GenerateMoves(side) {
		undo := b.Apply(m)
		score := s.Minimax(b, s.depth-1, !maximizing)
		undo()

		s.log.Debug().Str("move", m.String()).Int("score", score).Msg("root move")

		better := score > res.Score
		if !maximizing {
			better = score < res.Score
		}
		if !res.Found || better {
			res.Move, res.Score, res.Found = m, score, true
		}
	}
	if !res.Found {
		res.Score = Evaluate(b)
	}

	res.Nodes = s.nodes
	res.Elapsed = time.Since(start)
	s.log.Debug().
		Str("side", side.String()).
		Int("depth", s.depth).
		Str("bestmove", res.Move.String()).
		Int("score", res.Score).
		Uint64("nodes", res.Nodes).
		Dur("elapsed", res.Elapsed).
		Msg("search done")
	return res
}

// BestMove returns side's best move, or false when side has no candidates.
func (s *Searcher) BestMove(b *gm.Board, side gm.Color) (gm.Move, bool) {
	res := s.Search(b, side)
	return res.Move, res.Found
}

// BestMove searches depth plies with a throwaway Searcher.
func BestMove(b *gm.Board, side gm.Color, depth int) (gm.Move, bool) {
	return NewSearcher(Options{Depth: depth, Logger: zerolog.Nop()}).BestMove(b, side)
}
