package solver

import (
	"context"
	"time"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/ports"
)

// Solve finds one completion of g, or reports domain.ErrUnsolvable. The
// search runs on a private copy; g is never mutated.
func (s *Backtracking) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	grid := *g
	m, ok := seedMasks(&grid)
	if !ok {
		return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrUnsolvable
	}
	nodes := 0

	var dfs func() (bool, error)
	dfs = func() (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if s.NodeLimit > 0 && nodes >= s.NodeLimit {
			return false, ErrBudget
		}
		r, c, cand, empty := nextCell(&grid, &m)
		if !empty {
			return true, nil
		}
		for v := uint8(1); v <= 9; v++ {
			if cand&(1<<(v-1)) == 0 {
				continue
			}
			nodes++
			m.place(&grid, r, c, v)
			solved, err := dfs()
			if solved || err != nil {
				return solved, err
			}
			m.unplace(&grid, r, c, v)
		}
		return false, nil
	}

	solved, err := dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, st, err
	}
	if !solved {
		return nil, st, domain.ErrUnsolvable
	}
	out := grid
	return &out, st, nil
}
