package hint

import (
	"context"
	"fmt"

	"svw.info/sudokukit/internal/domain"
)

// Engine proposes one correct cell at a time. With a solution grid it picks
// the first cell (row-major) that is empty or wrong, so hints are
// reproducible for identical state. Without a solution it falls back to
// naked singles, which needs nothing beyond the current grid.
type Engine struct{}

func New() *Engine { return &Engine{} }

func (e *Engine) Hint(ctx context.Context, current, solution *domain.Grid) (domain.Hint, bool, error) {
	if solution != nil {
		return fromSolution(current, solution)
	}
	return nakedSingle(current)
}

func fromSolution(current, solution *domain.Grid) (domain.Hint, bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if current[r][c] == solution[r][c] {
				continue
			}
			v := solution[r][c]
			return domain.Hint{
				Cell:    domain.CellCoord{Row: r, Col: c},
				Value:   v,
				Message: fmt.Sprintf("r%dc%d is %d", r+1, c+1, v),
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

func nakedSingle(g *domain.Grid) (domain.Hint, bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			if v, ok := g.CandidatesAt(r, c).Single(); ok {
				return domain.Hint{
					Cell:    domain.CellCoord{Row: r, Col: c},
					Value:   v,
					Message: fmt.Sprintf("only %d fits at r%dc%d", v, r+1, c+1),
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}
