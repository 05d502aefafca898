package solver

import (
	"errors"
	"math/bits"

	"svw.info/sudokukit/internal/domain"
)

// ErrBudget reports that a node budget ran out before the search reached a
// verdict. Distinct from domain.ErrUnsolvable: the grid may still have a
// solution, the search just did not get to finish.
var ErrBudget = errors.New("solver: node budget exhausted")

// Backtracking is a recursive solver over row/col/box bitmasks with
// minimum-remaining-values cell ordering.
type Backtracking struct {
	// NodeLimit caps the nodes explored per call; 0 means unlimited.
	NodeLimit int
}

func NewBacktracking() *Backtracking { return &Backtracking{} }

const fullSet = 0x1FF // digits 1..9

// masks track which digits are present per row, column and box.
// Bit v-1 set means digit v is taken in that unit.
type masks struct {
	row [9]uint16
	col [9]uint16
	box [9]uint16
}

func boxOf(r, c int) int { return (r/3)*3 + c/3 }

// seedMasks builds masks from the filled cells of g. A duplicate among the
// givens makes the grid unsolvable before any search starts.
func seedMasks(g *domain.Grid) (masks, bool) {
	var m masks
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			bit := uint16(1) << (v - 1)
			b := boxOf(r, c)
			if m.row[r]&bit != 0 || m.col[c]&bit != 0 || m.box[b]&bit != 0 {
				return m, false
			}
			m.row[r] |= bit
			m.col[c] |= bit
			m.box[b] |= bit
		}
	}
	return m, true
}

func (m *masks) candidates(r, c int) uint16 {
	return ^(m.row[r] | m.col[c] | m.box[boxOf(r, c)]) & fullSet
}

func (m *masks) place(g *domain.Grid, r, c int, v uint8) {
	bit := uint16(1) << (v - 1)
	m.row[r] |= bit
	m.col[c] |= bit
	m.box[boxOf(r, c)] |= bit
	g[r][c] = v
}

func (m *masks) unplace(g *domain.Grid, r, c int, v uint8) {
	bit := uint16(1) << (v - 1)
	m.row[r] &^= bit
	m.col[c] &^= bit
	m.box[boxOf(r, c)] &^= bit
	g[r][c] = 0
}

// nextCell picks the empty cell with the fewest candidates (MRV). A dead
// cell (zero candidates) wins immediately so the caller backtracks without
// trying anything.
func nextCell(g *domain.Grid, m *masks) (r, c int, cand uint16, ok bool) {
	best := 10
	for rr := 0; rr < 9; rr++ {
		for cc := 0; cc < 9; cc++ {
			if g[rr][cc] != 0 {
				continue
			}
			cs := m.candidates(rr, cc)
			n := bits.OnesCount16(cs)
			if n < best {
				best = n
				r, c, cand, ok = rr, cc, cs, true
				if n <= 1 {
					return
				}
			}
		}
	}
	return
}
