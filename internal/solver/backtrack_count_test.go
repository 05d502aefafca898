package solver

import (
	"context"
	"testing"
	"time"

	"svw.info/sudokukit/internal/domain"
)

func TestCountSolutionsEmptyGridStopsAtLimit(t *testing.T) {
	var empty domain.Grid
	s := NewBacktracking()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// An empty grid has an astronomical number of completions; the cap
	// must stop the search after the second one.
	n, st, err := s.CountSolutions(ctx, &empty, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("want count 2, got %d", n)
	}
	if empty != (domain.Grid{}) {
		t.Fatalf("input grid mutated by CountSolutions")
	}
	t.Logf("counted in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestCountSolutionsUniquePuzzle(t *testing.T) {
	in := sample
	s := NewBacktracking()
	n, _, err := s.CountSolutions(context.Background(), &in, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("sample puzzle should be unique, got count %d", n)
	}
}

func TestCountSolutionsDuplicateGivensZero(t *testing.T) {
	var in domain.Grid
	in[0][0] = 7
	in[4][0] = 7 // same column
	s := NewBacktracking()
	n, _, err := s.CountSolutions(context.Background(), &in, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("conflicting givens should count 0, got %d", n)
	}
}
