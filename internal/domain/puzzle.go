package domain

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint suggests the correct value for a single cell.
type Hint struct {
	Cell    CellCoord `json:"cell"`
	Value   uint8     `json:"value"`
	Message string    `json:"message,omitempty"`
}

// Puzzle pairs a givens grid with its unique solution.
// Invariant: Givens has exactly one completion and it equals Solution.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Givens     Grid       `json:"givens"`
	Solution   Grid       `json:"solution"`
	Clues      int        `json:"clues,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Clues      int        `json:"clues,omitempty"`
	CreatedAt  int64      `json:"createdAt"`
}
