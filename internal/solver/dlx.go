package solver

import (
	"context"
	"time"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/ports"
)

// DLX solves Sudoku as exact cover via Algorithm X with dancing links.
// 324 constraint columns, 729 candidate rows (r,c,v):
//
//	0..80    cell (r,c) holds some digit
//	81..161  row r has digit v
//	162..242 col c has digit v
//	243..323 box b has digit v, b = (r/3)*3 + c/3
type DLX struct{}

func NewDLX() *DLX { return &DLX{} }

const (
	nSize     = 9
	nCells    = nSize * nSize // 81
	nCols     = 4 * nCells    // 324
	nRows     = nCells * nSize // 729
	colCell   = 0
	colRowNum = 81
	colColNum = 162
	colBoxNum = 243
)

type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	rowIdx                int // 0..728 identifies (r,c,v)
}

type dlxColumn struct {
	dlxNode
	size   int
	active bool
}

type dlxMatrix struct {
	cols      [nCols]*dlxColumn
	rowHead   [nRows]*dlxNode
	sol       [nRows]*dlxNode
	solLen    int
	nodes     int
	activeCnt int
}

func newMatrix() *dlxMatrix {
	d := &dlxMatrix{}
	for i := 0; i < nCols; i++ {
		c := &dlxColumn{active: true}
		c.up = &c.dlxNode
		c.down = &c.dlxNode
		d.cols[i] = c
	}
	d.activeCnt = nCols

	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			for v := 1; v <= nSize; v++ {
				row := rowIndex(r, c, v)
				var first, prev *dlxNode
				for _, colID := range rowColumns(r, c, v) {
					col := d.cols[colID]
					n := &dlxNode{col: col, rowIdx: row}
					// vertical insert at the bottom of the column
					n.down = &col.dlxNode
					n.up = col.dlxNode.up
					col.dlxNode.up.down = n
					col.dlxNode.up = n
					col.size++
					// horizontal ring of the 4 nodes of this row
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				d.rowHead[row] = first
			}
		}
	}
	return d
}

func rowIndex(r, c, v int) int { return (r*nSize+c)*nSize + (v - 1) }

func rowColumns(r, c, v int) [4]int {
	cell := colCell + r*nSize + c
	rowN := colRowNum + r*nSize + (v - 1)
	colN := colColNum + c*nSize + (v - 1)
	box := (r/3)*3 + (c / 3)
	boxN := colBoxNum + box*nSize + (v - 1)
	return [4]int{cell, rowN, colN, boxN}
}

func (d *dlxMatrix) cover(col *dlxColumn) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (d *dlxMatrix) uncover(col *dlxColumn) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// chooseColumn picks the active column with the smallest size (Knuth's
// S heuristic, the exact-cover cousin of MRV).
func (d *dlxMatrix) chooseColumn() *dlxColumn {
	var best *dlxColumn
	for _, c := range d.cols {
		if !c.active {
			continue
		}
		if best == nil || c.size < best.size {
			best = c
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

// search explores the matrix until limit solutions are found. Returns true
// when the search should stop unwinding.
func (d *dlxMatrix) search(ctx context.Context, k, limit int, found *int) bool {
	if ctx.Err() != nil {
		return true
	}
	if d.activeCnt == 0 {
		d.solLen = k
		*found++
		return *found >= limit
	}
	c := d.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	d.cover(c)
	for r := c.down; r != &c.dlxNode; r = r.down {
		d.nodes++
		d.sol[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				d.cover(j.col)
			}
		}
		stopped := d.search(ctx, k+1, limit, found)
		for j := r.left; j != r; j = j.left {
			d.uncover(j.col)
		}
		if stopped {
			d.uncover(c)
			return true
		}
	}
	d.uncover(c)
	return false
}

// applyGiven selects the (r,c,v) row at the top level by covering its
// columns. Callers pre-check givens for conflicts; covering the columns of
// two conflicting givens would corrupt the matrix.
func (d *dlxMatrix) applyGiven(r, c, v int) {
	head := d.rowHead[rowIndex(r, c, v)]
	for j := head; ; j = j.right {
		d.cover(j.col)
		if j.right == head {
			break
		}
	}
}

func (d *dlxMatrix) seed(g *domain.Grid) bool {
	if _, ok := seedMasks(g); !ok {
		return false
	}
	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			if v := int(g[r][c]); v > 0 {
				d.applyGiven(r, c, v)
			}
		}
	}
	return true
}

func (s *DLX) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	d := newMatrix()
	if !d.seed(g) {
		return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrUnsolvable
	}
	found := 0
	d.search(ctx, 0, 1, &found)
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if found < 1 {
		return nil, st, domain.ErrUnsolvable
	}
	out := *g
	for i := 0; i < d.solLen; i++ {
		r, c, v := decodeRow(d.sol[i].rowIdx)
		out[r][c] = uint8(v)
	}
	return &out, st, nil
}

func (s *DLX) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	if limit < 1 {
		limit = 1
	}
	d := newMatrix()
	if !d.seed(g) {
		return 0, ports.Stats{Duration: time.Since(start)}, nil
	}
	found := 0
	d.search(ctx, 0, limit, &found)
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	return found, st, ctx.Err()
}

func decodeRow(row int) (r, c, v int) {
	cell := row / nSize
	v = row%nSize + 1
	r = cell / nSize
	c = cell % nSize
	return
}
