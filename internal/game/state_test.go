package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokukit/internal/domain"
)

func testPuzzle(t *testing.T) *domain.Puzzle {
	t.Helper()
	givens, err := domain.ParseLine("53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79")
	require.NoError(t, err)
	solution, err := domain.ParseLine("534678912672195348198342567859761423426853791713924856961537284287419635345286179")
	require.NoError(t, err)
	return &domain.Puzzle{Difficulty: domain.Medium, Givens: givens, Solution: solution}
}

func TestSetValueUndoRedo(t *testing.T) {
	s := NewState(testPuzzle(t))

	require.True(t, s.SetValue(0, 2, 4))
	require.Equal(t, uint8(4), s.Values[0][2])

	require.True(t, s.Undo())
	require.Equal(t, uint8(0), s.Values[0][2])
	require.False(t, s.Undo())

	require.True(t, s.Redo())
	require.Equal(t, uint8(4), s.Values[0][2])
	require.False(t, s.Redo())
}

func TestSetValueRejectsGivens(t *testing.T) {
	s := NewState(testPuzzle(t))
	require.True(t, s.IsGiven(0, 0))
	require.False(t, s.SetValue(0, 0, 9))
	require.Equal(t, uint8(5), s.Values[0][0])
	require.False(t, s.ClearCell(0, 0))
}

func TestNotesLifecycle(t *testing.T) {
	s := NewState(testPuzzle(t))
	cell := domain.CellCoord{Row: 0, Col: 2}

	require.True(t, s.ToggleNote(0, 2, 1))
	require.True(t, s.ToggleNote(0, 2, 4))
	require.True(t, s.Notes[cell].Has(1))
	require.True(t, s.Notes[cell].Has(4))

	// notes are only for empty non-given cells
	require.False(t, s.ToggleNote(0, 0, 2))

	// placing a value wipes the cell's notes; undo restores them
	require.True(t, s.SetValue(0, 2, 4))
	_, present := s.Notes[cell]
	require.False(t, present)
	require.True(t, s.Undo())
	require.True(t, s.Notes[cell].Has(1))
	require.True(t, s.Notes[cell].Has(4))

	// a filled cell takes no notes
	require.True(t, s.Redo())
	require.False(t, s.ToggleNote(0, 2, 5))
}

func TestNoteUndoRedo(t *testing.T) {
	s := NewState(testPuzzle(t))
	cell := domain.CellCoord{Row: 0, Col: 3}

	require.True(t, s.ToggleNote(0, 3, 6))
	require.True(t, s.Undo())
	_, present := s.Notes[cell]
	require.False(t, present)
	require.True(t, s.Redo())
	require.True(t, s.Notes[cell].Has(6))
}

func TestRedoClearedByNewMove(t *testing.T) {
	s := NewState(testPuzzle(t))
	require.True(t, s.SetValue(0, 2, 1))
	require.True(t, s.Undo())
	require.True(t, s.SetValue(0, 2, 2))
	require.False(t, s.Redo())
}

func TestApplyHintAndCompleted(t *testing.T) {
	p := testPuzzle(t)
	s := NewState(p)
	// fill everything except one cell
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !s.IsGiven(r, c) && !(r == 4 && c == 4) {
				require.True(t, s.SetValue(r, c, p.Solution[r][c]))
			}
		}
	}
	require.False(t, s.Completed())

	h := domain.Hint{Cell: domain.CellCoord{Row: 4, Col: 4}, Value: p.Solution[4][4]}
	require.True(t, s.ApplyHint(h))
	require.True(t, s.Completed())
	require.Empty(t, s.Conflicts())
}

func TestConflicts(t *testing.T) {
	s := NewState(testPuzzle(t))
	// row 0 already has a 5 at c0
	require.True(t, s.SetValue(0, 2, 5))
	conflicts := s.Conflicts()
	require.Contains(t, conflicts, domain.CellCoord{Row: 0, Col: 0})
	require.Contains(t, conflicts, domain.CellCoord{Row: 0, Col: 2})
}

func TestSaveRoundTrip(t *testing.T) {
	s := NewState(testPuzzle(t))
	require.True(t, s.SetValue(0, 2, 4))
	require.True(t, s.ToggleNote(0, 3, 2))
	require.True(t, s.ToggleNote(0, 3, 6))
	s.Elapsed = 125

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var back State
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, s.Difficulty, back.Difficulty)
	require.Equal(t, s.Givens, back.Givens)
	require.Equal(t, s.Solution, back.Solution)
	require.Equal(t, s.Values, back.Values)
	require.Equal(t, s.Notes, back.Notes)
	require.Equal(t, s.Elapsed, back.Elapsed)
}
