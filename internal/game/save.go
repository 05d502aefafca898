package game

import (
	"encoding/json"
	"fmt"

	"svw.info/sudokukit/internal/domain"
)

// savePayload is the savegame document. Notes are keyed "r,c" with digits
// listed ascending; the undo/redo stacks are session-local and not saved.
type savePayload struct {
	Difficulty domain.Difficulty  `json:"difficulty"`
	Givens     domain.Grid        `json:"givens"`
	Solution   domain.Grid        `json:"solution"`
	Values     domain.Grid        `json:"values"`
	Notes      map[string][]uint8 `json:"notes,omitempty"`
	Elapsed    int64              `json:"elapsedSeconds,omitempty"`
}

func (s *State) MarshalJSON() ([]byte, error) {
	p := savePayload{
		Difficulty: s.Difficulty,
		Givens:     s.Givens,
		Solution:   s.Solution,
		Values:     s.Values,
		Elapsed:    s.Elapsed,
	}
	if len(s.Notes) > 0 {
		p.Notes = make(map[string][]uint8, len(s.Notes))
		for cell, set := range s.Notes {
			p.Notes[fmt.Sprintf("%d,%d", cell.Row, cell.Col)] = set.Digits()
		}
	}
	return json.Marshal(p)
}

func (s *State) UnmarshalJSON(data []byte) error {
	var p savePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	notes := make(map[domain.CellCoord]domain.CandidateSet, len(p.Notes))
	for key, digits := range p.Notes {
		var r, c int
		if _, err := fmt.Sscanf(key, "%d,%d", &r, &c); err != nil {
			return fmt.Errorf("bad note key %q: %w", key, err)
		}
		if r < 0 || r > 8 || c < 0 || c > 8 {
			return fmt.Errorf("note key %q out of range", key)
		}
		var set domain.CandidateSet
		for _, d := range digits {
			set = set.Add(d)
		}
		if set != 0 {
			notes[domain.CellCoord{Row: r, Col: c}] = set
		}
	}
	*s = State{
		Difficulty: p.Difficulty,
		Givens:     p.Givens,
		Solution:   p.Solution,
		Values:     p.Values,
		Notes:      notes,
		Elapsed:    p.Elapsed,
	}
	return nil
}
