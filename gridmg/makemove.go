package gridmg

// MakeMove applies a move to the board in place. It returns the occupant that
// stood on m.To before the move (NoPiece for a quiet move); pass it to
// UnmakeMove to restore the position exactly.
func (b *Board) MakeMove(m Move) (captured Piece) {
	from, to := m.From, m.To
	moved := b.grid[from.Row][from.Col]
	captured = b.grid[to.Row][to.Col]

	fromIdx, toIdx := squareIndex(from), squareIndex(to)
	if captured != NoPiece {
		b.zobristKey ^= zobristPiece[captured][toIdx]
	}
	if moved != NoPiece {
		b.zobristKey ^= zobristPiece[moved][fromIdx]
		b.zobristKey ^= zobristPiece[moved][toIdx]
	}

	b.grid[to.Row][to.Col] = moved
	b.grid[from.Row][from.Col] = NoPiece
	return captured
}

// UnmakeMove undoes a previously made move. captured must be the value
// MakeMove returned for m.
func (b *Board) UnmakeMove(m Move, captured Piece) {
	from, to := m.From, m.To
	moved := b.grid[to.Row][to.Col]

	fromIdx, toIdx := squareIndex(from), squareIndex(to)
	if moved != NoPiece {
		b.zobristKey ^= zobristPiece[moved][toIdx]
		b.zobristKey ^= zobristPiece[moved][fromIdx]
	}
	if captured != NoPiece {
		b.zobristKey ^= zobristPiece[captured][toIdx]
	}

	b.grid[from.Row][from.Col] = moved
	b.grid[to.Row][to.Col] = captured
}

// Apply plays a move and returns an undo closure
func (b *Board) Apply(m Move) func() {
	captured := b.MakeMove(m)
	return func() { b.UnmakeMove(m, captured) }
}

// Hash returns the current Zobrist hash key.
func (b *Board) Hash() uint64 { return b.zobristKey }

// Validate cross-checks the incremental Zobrist key against a full recomputation.
func (b *Board) Validate() bool {
	return b.zobristKey == b.ComputeZobrist()
}
