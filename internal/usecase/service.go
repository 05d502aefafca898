package usecase

import (
	"context"
	"errors"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/game"
	"svw.info/sudokukit/internal/ports"
)

// Service is the facade the shells talk to. Engine methods are safe to call
// concurrently as long as each call gets its own grid.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Solver.CountSolutions(ctx, g, limit)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) Hint(ctx context.Context, current, solution *domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, current, solution)
}

// Persistence

func (u *Service) SavePuzzle(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.SavePuzzle(ctx, p)
}

func (u *Service) LoadPuzzle(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.LoadPuzzle(ctx, id)
}

func (u *Service) ListPuzzles(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.ListPuzzles(ctx)
}

func (u *Service) SaveGame(ctx context.Context, s *game.State) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.SaveGame(ctx, s)
}

func (u *Service) LoadGame(ctx context.Context) (*game.State, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.LoadGame(ctx)
}
