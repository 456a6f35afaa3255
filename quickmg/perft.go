package quickmg

import "sync"

// Perft counts leaf nodes (legal move sequences) from the position for a given depth.
// Per-depth buffers are reused to avoid allocations.
func Perft(b Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(b, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 256)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(b Board, depth int, pc *perftCtx) uint64 {
	moves := b.LegalMovesInto(pc.bufFor(depth))
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += perftRec(b.Apply(m), depth-1, pc)
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Root moves are counted
// concurrently; every worker owns the Board it got from Apply.
func PerftDivide(b Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	moves := b.LegalMoves()
	counts := make([]uint64, len(moves))

	var wg sync.WaitGroup
	for i, m := range moves {
		wg.Add(1)
		go func(i int, child Board) {
			defer wg.Done()
			counts[i] = Perft(child, depth-1)
		}(i, b.Apply(m))
	}
	wg.Wait()

	for i, m := range moves {
		result[m] = counts[i]
	}
	return result
}
