package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/ports"
)

// UniqueGenerator builds puzzles whose givens have exactly one completion,
// using the provided solver for the uniqueness probes.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

// Generate produces a puzzle for the given difficulty. All randomness comes
// from the seed, so equal seed and difficulty yield equal puzzles.
//
// Phase 1 fills an empty grid by depth-first search with shuffled candidate
// order. Phase 2 visits all 81 cells in shuffled order and digs each one out
// only if the remaining givens still have a unique solution; a cell whose
// removal breaks uniqueness is restored and never retried. Digging stops
// once the difficulty's clue target is reached. A pass that ends above
// target still returns the achieved puzzle as success.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var solution domain.Grid
	if !fillRandom(ctx, rng, &solution) {
		return nil, ports.Stats{Duration: time.Since(start)}, ctx.Err()
	}

	givens := solution
	positions := rng.Perm(81)
	target := diff.Clues()
	if target < 17 {
		target = 17
	}
	if target > 81 {
		target = 81
	}
	clues := 81
	nodes := 0
	probes := 0

	for _, pos := range positions {
		if ctx.Err() != nil || clues <= target {
			break
		}
		r, c := pos/9, pos%9
		old := givens[r][c]
		givens[r][c] = 0
		n, st, err := g.Solver.CountSolutions(ctx, &givens, 2)
		nodes += st.Nodes
		probes++
		if err != nil || n != 1 {
			givens[r][c] = old
			continue
		}
		clues--
	}

	logrus.WithFields(logrus.Fields{
		"difficulty": diff.String(),
		"seed":       seed,
		"clues":      clues,
		"target":     target,
		"probes":     probes,
		"nodes":      nodes,
	}).Debug("generated puzzle")

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Givens:     givens,
		Solution:   solution,
		Clues:      clues,
		CreatedAt:  time.Now().Unix(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom completes an empty grid into a full valid solution, trying the
// digits of each cell in a per-cell shuffled order.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *domain.Grid) bool {
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if grid.CanPlace(r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}
