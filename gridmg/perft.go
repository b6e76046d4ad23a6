package gridmg

// Perft counts leaf nodes of the pseudo-legal move tree from the position,
// side moving first and sides alternating each ply.
// Reuses per-depth buffers to avoid allocations.
func Perft(b *Board, side Color, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(b, side, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 128)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(b *Board, side Color, depth int, pc *perftCtx) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateMovesInto(pc.bufFor(depth), side)
	pc.bufs[depth] = moves
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		captured := b.MakeMove(m)
		nodes += perftRec(b, side.Other(), depth-1, pc)
		b.UnmakeMove(m, captured)
	}
	return nodes
}

// PerftDivide returns a map from each root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func PerftDivide(b *Board, side Color, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.GenerateMoves(side) {
		captured := b.MakeMove(m)
		result[m] = Perft(b, side.Other(), depth-1)
		b.UnmakeMove(m, captured)
	}
	return result
}
