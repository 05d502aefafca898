package solver

import (
	"context"
	"time"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/ports"
)

// CountSolutions counts completions of g, stopping as soon as limit is
// reached. limit 2 distinguishes "unique" from "multiple" without paying
// for a full enumeration. Duplicate givens simply count as zero.
func (s *Backtracking) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	if limit < 1 {
		limit = 1
	}
	grid := *g
	m, ok := seedMasks(&grid)
	if !ok {
		return 0, ports.Stats{Duration: time.Since(start)}, nil
	}
	nodes := 0
	count := 0

	// dfs returns true when the search should stop: limit reached,
	// ctx canceled or budget exhausted.
	var dfs func() (bool, error)
	dfs = func() (bool, error) {
		if err := ctx.Err(); err != nil {
			return true, err
		}
		if s.NodeLimit > 0 && nodes >= s.NodeLimit {
			return true, ErrBudget
		}
		r, c, cand, empty := nextCell(&grid, &m)
		if !empty {
			count++
			return count >= limit, nil
		}
		for v := uint8(1); v <= 9; v++ {
			if cand&(1<<(v-1)) == 0 {
				continue
			}
			nodes++
			m.place(&grid, r, c, v)
			stop, err := dfs()
			m.unplace(&grid, r, c, v)
			if stop || err != nil {
				return stop, err
			}
		}
		return false, nil
	}

	_, err := dfs()
	return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
}
