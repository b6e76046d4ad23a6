package engine

import (
	gm "minimax-chess/gridmg"
)

// Evaluate returns the static material score of the position: the sum of
// signed piece values, positive when White is ahead.
func Evaluate(b *gm.Board) int {
	grid := b.Grid()
	score := 0
	for row := range grid {
		for _, p := range grid[row] {
			score += p.Value()
		}
	}
	return score
}
