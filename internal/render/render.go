// Package render draws grids for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"svw.info/sudokukit/internal/domain"
)

const (
	topRule    = "┌───────┬───────┬───────┐"
	midRule    = "├───────┼───────┼───────┤"
	bottomRule = "└───────┴───────┴───────┘"
)

// Board writes g as a box-drawn 9x9 board. When givens is non-nil, cells
// present in it are shown bold and player-filled cells cyan; colorize false
// drops all escape codes (piped output, --no-color).
func Board(w io.Writer, g domain.Grid, givens *domain.Grid, colorize bool) {
	au := aurora.NewAurora(colorize)
	fmt.Fprintln(w, topRule)
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			fmt.Fprintln(w, midRule)
		}
		var sb strings.Builder
		for c := 0; c < 9; c++ {
			if c%3 == 0 {
				sb.WriteString("│ ")
			}
			sb.WriteString(cell(au, g[r][c], givens != nil && givens[r][c] != 0))
			sb.WriteByte(' ')
		}
		sb.WriteString("│")
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprintln(w, bottomRule)
}

func cell(au aurora.Aurora, v uint8, given bool) string {
	if v == 0 {
		return "."
	}
	s := string(rune('0' + v))
	if given {
		return au.Bold(s).String()
	}
	return au.Cyan(s).String()
}

// Line writes the compact 81-character form.
func Line(w io.Writer, g domain.Grid) {
	fmt.Fprintln(w, g.Line())
}
