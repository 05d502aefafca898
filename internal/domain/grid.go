package domain

import (
	"fmt"
	"strings"
)

// Grid is a 9x9 Sudoku grid. 0 means empty, 1-9 are placed digits.
// It is a plain value type: assignment copies, comparison with == works.
type Grid [9][9]uint8

// FromValues builds a Grid from an 81-element row-major slice.
// Values outside 0..9 or a wrong length are rejected with ErrInvalidGrid.
func FromValues(values []int) (Grid, error) {
	var g Grid
	if len(values) != 81 {
		return g, fmt.Errorf("%w: want 81 values, got %d", ErrInvalidGrid, len(values))
	}
	for i, v := range values {
		if v < 0 || v > 9 {
			return g, fmt.Errorf("%w: value %d at index %d out of range 0..9", ErrInvalidGrid, v, i)
		}
		g[i/9][i%9] = uint8(v)
	}
	return g, nil
}

// ParseLine builds a Grid from an 81-character string, one cell per
// character in row-major order. '1'..'9' place digits, '0' and '.' mean empty.
func ParseLine(s string) (Grid, error) {
	var g Grid
	if len(s) != 81 {
		return g, fmt.Errorf("%w: want 81 characters, got %d", ErrInvalidGrid, len(s))
	}
	for i := 0; i < 81; i++ {
		switch ch := s[i]; {
		case ch == '0' || ch == '.':
			// empty
		case ch >= '1' && ch <= '9':
			g[i/9][i%9] = ch - '0'
		default:
			return g, fmt.Errorf("%w: character %q at index %d", ErrInvalidGrid, s[i], i)
		}
	}
	return g, nil
}

// Values returns the grid as an 81-element row-major slice, 0 for empty.
func (g Grid) Values() []int {
	out := make([]int, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			out = append(out, int(g[r][c]))
		}
	}
	return out
}

// Line returns the grid in the 81-character form accepted by ParseLine,
// with '.' for empty cells.
func (g Grid) Line() string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + g[r][c])
			}
		}
	}
	return sb.String()
}

// CheckRange reports ErrInvalidGrid if any cell holds a value above 9.
// Used at trust boundaries where a Grid arrives from decoded JSON.
func (g Grid) CheckRange() error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] > 9 {
				return fmt.Errorf("%w: value %d at r%dc%d out of range 0..9", ErrInvalidGrid, g[r][c], r, c)
			}
		}
	}
	return nil
}

// At returns the value at (r, c).
func (g Grid) At(r, c int) uint8 { return g[r][c] }

// Set writes v into (r, c), or clears the cell when v is 0. It does not
// reject duplicates; callers check CanPlace or CandidatesAt first.
func (g *Grid) Set(r, c int, v uint8) { g[r][c] = v }

// CanPlace reports whether no peer of (r, c) - same row, column or box,
// the cell itself excluded - already holds v.
func (g Grid) CanPlace(r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if i != c && g[r][i] == v {
			return false
		}
		if i != r && g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if br+dr == r && bc+dc == c {
				continue
			}
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// CandidatesAt returns the set of digits placeable at (r, c). A filled
// cell has no candidates.
func (g Grid) CandidatesAt(r, c int) CandidateSet {
	if g[r][c] != 0 {
		return 0
	}
	s := AllCandidates
	for i := 0; i < 9; i++ {
		s = s.Remove(g[r][i]).Remove(g[i][c])
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			s = s.Remove(g[br+dr][bc+dc])
		}
	}
	return s
}

// FirstEmpty returns the first empty cell in row-major order.
func (g Grid) FirstEmpty() (CellCoord, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return CellCoord{Row: r, Col: c}, true
			}
		}
	}
	return CellCoord{}, false
}

// CountFilled returns the number of non-empty cells.
func (g Grid) CountFilled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// IsComplete reports whether no empty cells remain. Validity is an
// invariant maintained by the callers that fill the grid, not re-verified here.
func (g Grid) IsComplete() bool {
	_, ok := g.FirstEmpty()
	return !ok
}
