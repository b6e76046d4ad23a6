package gridmg

import "math/rand"

// Zobrist keys for piece (index by piece code) on each square
var zobristPiece [16][64]uint64

// Initialize Zobrist keys (called on package init)
func init() {
	initZobrist()
}

func initZobrist() {
	// Use a fixed seed for reproducibility in tests
	rnd := rand.New(rand.NewSource(0xC0DE))
	for p := 0; p < 16; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
}

// ComputeZobrist calculates the Zobrist hash of the current placement from scratch.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.grid[row][col]; p != NoPiece {
				key ^= zobristPiece[p][row*8+col]
			}
		}
	}
	return key
}
