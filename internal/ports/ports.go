package ports

import (
	"context"
	"time"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/game"
)

// Stats captures performance characteristics of a search.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver runs exact search over a grid. Implementations never mutate the
// input grid; solved grids are returned as fresh values. A grid passed to a
// call is owned by that call until it returns; concurrent calls on distinct
// grids are safe.
type Solver interface {
	// Solve returns one completion of g, or domain.ErrUnsolvable.
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
	// CountSolutions counts completions of g, stopping early once limit
	// is reached. The generator probes uniqueness with limit=2.
	CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, Stats, error)
}

// Generator creates puzzles with a unique solution at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box duplicates).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter proposes a single correct cell. solution may be nil, in which case
// implementations fall back to logic that needs no solved grid.
type Hinter interface {
	Hint(ctx context.Context, current, solution *domain.Grid) (domain.Hint, bool, error)
}

// Storage persists puzzles and the single in-progress game.
type Storage interface {
	SavePuzzle(ctx context.Context, p *domain.Puzzle) error
	LoadPuzzle(ctx context.Context, id string) (*domain.Puzzle, error)
	ListPuzzles(ctx context.Context) ([]domain.PuzzleMeta, error)
	SaveGame(ctx context.Context, s *game.State) error
	LoadGame(ctx context.Context) (*game.State, error)
}
