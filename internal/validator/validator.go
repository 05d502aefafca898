package validator

import (
	"context"

	"svw.info/sudokukit/internal/domain"
)

// FastValidator finds row/col/box duplicates with one occurrence count per
// unit and digit. Every cell participating in a duplicate is reported, not
// just the later occurrences. Empty cells never conflict.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (fv *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	var bad [9][9]bool

	mark := func(cells [9]domain.CellCoord) {
		var seen [10]int
		for _, cc := range cells {
			if v := g[cc.Row][cc.Col]; v != 0 {
				seen[v]++
			}
		}
		for _, cc := range cells {
			if v := g[cc.Row][cc.Col]; v != 0 && seen[v] > 1 {
				bad[cc.Row][cc.Col] = true
			}
		}
	}

	for i := 0; i < 9; i++ {
		var row, col [9]domain.CellCoord
		for j := 0; j < 9; j++ {
			row[j] = domain.CellCoord{Row: i, Col: j}
			col[j] = domain.CellCoord{Row: j, Col: i}
		}
		mark(row)
		mark(col)
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			var box [9]domain.CellCoord
			for k := 0; k < 9; k++ {
				box[k] = domain.CellCoord{Row: br*3 + k/3, Col: bc*3 + k%3}
			}
			mark(box)
		}
	}

	conflicts := make([]domain.CellCoord, 0, 8)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if bad[r][c] {
				conflicts = append(conflicts, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return len(conflicts) == 0, conflicts, nil
}
