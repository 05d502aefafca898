// Package game holds the mutable play state layered over a generated
// puzzle: player values on top of the givens, pencil notes, and the
// undo/redo stacks. Shells (CLI, HTTP) drive it; it owns no presentation.
package game

import (
	"context"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/validator"
)

// Move records one reversible mutation. Value moves also capture the notes
// wiped from the cell so undo restores them.
type Move struct {
	Cell     domain.CellCoord
	Prev     uint8
	Next     uint8
	Note     bool
	NotePrev domain.CandidateSet
	NoteNext domain.CandidateSet
}

// State is the in-progress game. Not safe for concurrent use; callers
// serialize access.
type State struct {
	Difficulty domain.Difficulty
	Givens     domain.Grid
	Solution   domain.Grid
	Values     domain.Grid
	Notes      map[domain.CellCoord]domain.CandidateSet
	Elapsed    int64 // seconds

	undo []Move
	redo []Move
}

// NewState starts a fresh game over p: the player's values begin as a copy
// of the givens.
func NewState(p *domain.Puzzle) *State {
	return &State{
		Difficulty: p.Difficulty,
		Givens:     p.Givens,
		Solution:   p.Solution,
		Values:     p.Givens,
		Notes:      make(map[domain.CellCoord]domain.CandidateSet),
	}
}

// IsGiven reports whether (r, c) is a clue cell the player cannot change.
func (s *State) IsGiven(r, c int) bool { return s.Givens[r][c] != 0 }

// SetValue writes v (0 clears) into a non-given cell, wiping its notes and
// recording an undoable move. Returns false without effect on given cells
// or when the value would not change.
func (s *State) SetValue(r, c int, v uint8) bool {
	if s.IsGiven(r, c) || v > 9 {
		return false
	}
	cell := domain.CellCoord{Row: r, Col: c}
	if s.Values[r][c] == v && s.Notes[cell] == 0 {
		return false
	}
	s.apply(Move{Cell: cell, Prev: s.Values[r][c], Next: v, NotePrev: s.Notes[cell]})
	return true
}

// ClearCell removes the player's value from a non-given cell.
func (s *State) ClearCell(r, c int) bool { return s.SetValue(r, c, 0) }

// ToggleNote flips pencil digit v at an empty non-given cell.
func (s *State) ToggleNote(r, c int, v uint8) bool {
	if s.IsGiven(r, c) || s.Values[r][c] != 0 || v < 1 || v > 9 {
		return false
	}
	cell := domain.CellCoord{Row: r, Col: c}
	prev := s.Notes[cell]
	s.apply(Move{Cell: cell, Note: true, NotePrev: prev, NoteNext: prev.Toggle(v)})
	return true
}

// ApplyHint fills the hinted cell with its value, as an undoable move.
func (s *State) ApplyHint(h domain.Hint) bool {
	return s.SetValue(h.Cell.Row, h.Cell.Col, h.Value)
}

func (s *State) apply(m Move) {
	s.run(m)
	s.undo = append(s.undo, m)
	s.redo = nil
}

func (s *State) run(m Move) {
	if m.Note {
		s.setNotes(m.Cell, m.NoteNext)
		return
	}
	s.Values[m.Cell.Row][m.Cell.Col] = m.Next
	s.setNotes(m.Cell, 0)
}

func (s *State) revert(m Move) {
	if !m.Note {
		s.Values[m.Cell.Row][m.Cell.Col] = m.Prev
	}
	s.setNotes(m.Cell, m.NotePrev)
}

func (s *State) setNotes(cell domain.CellCoord, set domain.CandidateSet) {
	if set == 0 {
		delete(s.Notes, cell)
	} else {
		s.Notes[cell] = set
	}
}

// Undo reverts the latest move. Returns false when there is nothing to undo.
func (s *State) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	m := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.revert(m)
	s.redo = append(s.redo, m)
	return true
}

// Redo re-applies the latest undone move.
func (s *State) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	m := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.run(m)
	s.undo = append(s.undo, m)
	return true
}

// Conflicts lists every cell participating in a row/col/box duplicate in
// the player's current values.
func (s *State) Conflicts() []domain.CellCoord {
	_, conflicts, _ := validator.New().Validate(context.Background(), &s.Values)
	return conflicts
}

// Completed reports whether the player's values equal the solution.
func (s *State) Completed() bool { return s.Values == s.Solution }
