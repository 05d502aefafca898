package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/validator"
)

func TestDLXSolveMatchesBacktracking(t *testing.T) {
	in := sample
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	fromDLX, st, err := NewDLX().Solve(ctx, &in)
	if err != nil {
		t.Fatalf("DLX Solve failed: %v", err)
	}
	ok, conf, _ := validator.New().Validate(ctx, fromDLX)
	if !ok {
		t.Fatalf("DLX produced invalid solution: %v", conf)
	}
	if in != sample {
		t.Fatalf("input grid mutated by DLX Solve")
	}

	// The sample has a unique solution, so both engines must agree.
	fromBT, _, err := NewBacktracking().Solve(ctx, &in)
	if err != nil {
		t.Fatalf("backtracking Solve failed: %v", err)
	}
	if *fromDLX != *fromBT {
		t.Fatalf("solvers disagree:\n%s\n%s", fromDLX.Line(), fromBT.Line())
	}
	t.Logf("DLX solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestDLXCountSolutions(t *testing.T) {
	var empty domain.Grid
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	n, _, err := NewDLX().CountSolutions(ctx, &empty, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("want count 2 on empty grid, got %d", n)
	}

	in := sample
	n, _, err = NewDLX().CountSolutions(ctx, &in, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("sample puzzle should be unique, got %d", n)
	}
}

func TestDLXDuplicateGivens(t *testing.T) {
	var in domain.Grid
	in[2][2] = 4
	in[0][0] = 4 // same box
	_, _, err := NewDLX().Solve(context.Background(), &in)
	if !errors.Is(err, domain.ErrUnsolvable) {
		t.Fatalf("want ErrUnsolvable, got %v", err)
	}
	n, _, err := NewDLX().CountSolutions(context.Background(), &in, 2)
	if err != nil || n != 0 {
		t.Fatalf("want count 0, got %d (err=%v)", n, err)
	}
}
