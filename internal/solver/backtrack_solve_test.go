package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/validator"
)

// A classic, solvable Sudoku (0 = empty).
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestBacktrackingSolveUnder1s(t *testing.T) {
	in := sample
	s := NewBacktracking()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, &in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if !out.IsComplete() {
		t.Fatalf("solution has empty cells: %s", out.Line())
	}
	ok, conf, err := validator.New().Validate(ctx, out)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
	if st.Duration > time.Second {
		t.Fatalf("took too long: %v (>1s)", st.Duration)
	}
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	in := sample
	s := NewBacktracking()
	ctx := context.Background()

	first, _, err := s.Solve(ctx, &in)
	if err != nil {
		t.Fatalf("first Solve failed: %v", err)
	}
	if in != sample {
		t.Fatalf("input grid mutated by Solve")
	}
	second, _, err := s.Solve(ctx, &in)
	if err != nil {
		t.Fatalf("second Solve failed: %v", err)
	}
	if *first != *second {
		t.Fatalf("Solve is not idempotent:\n%s\n%s", first.Line(), second.Line())
	}
	if in != sample {
		t.Fatalf("input grid mutated by second Solve")
	}
}

func TestSolveDuplicateGivensUnsolvable(t *testing.T) {
	var in domain.Grid
	in[0][0] = 5
	in[0][8] = 5 // same row
	s := NewBacktracking()
	_, _, err := s.Solve(context.Background(), &in)
	if !errors.Is(err, domain.ErrUnsolvable) {
		t.Fatalf("want ErrUnsolvable, got %v", err)
	}
}

func TestSolveNodeBudget(t *testing.T) {
	var empty domain.Grid
	s := &Backtracking{NodeLimit: 5}
	_, st, err := s.Solve(context.Background(), &empty)
	if !errors.Is(err, ErrBudget) {
		t.Fatalf("want ErrBudget, got %v", err)
	}
	if st.Nodes > 5 {
		t.Fatalf("budget overshoot: %d nodes", st.Nodes)
	}
}
