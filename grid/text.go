package grid

import (
	"fmt"
	"unicode/utf8"
)

// Import builds a Grid[rune] from equal-length text rows.
// Width is the rune count of the first row, height the number of rows.
// No rows yields an empty 0×0 grid.
// Returns ErrRaggedInput, naming the first offending row, if any row's
// length differs from the first.
// Complexity: O(W×H).
func Import(rows []string) (*Grid[rune], error) {
	// 1. Derive shape from the first row
	height := len(rows)
	width := 0
	if height > 0 {
		width = utf8.RuneCountInString(rows[0])
	}
	// 2. Reject ragged input before allocating
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedInput, y, n, width)
		}
	}
	// 3. Fill row-major
	g, err := New[rune](width, height)
	if err != nil {
		return nil, err
	}
	i := 0
	for _, row := range rows {
		for _, r := range row {
			g.cells[i] = r
			i++
		}
	}
	return g, nil
}

// Export renders a Grid[rune] back into one string per row.
// Export(Import(rows)) == rows for any rectangular input.
func Export(g *Grid[rune]) []string {
	return Render(g, func(r rune) rune { return r })
}

// Render converts each cell to a rune with symbol and returns one string
// per row, top to bottom.
func Render[T any](g *Grid[T], symbol func(v T) rune) []string {
	rows := make([]string, g.height)
	buf := make([]rune, g.width)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			buf[x] = symbol(g.cells[y*g.width+x])
		}
		rows[y] = string(buf)
	}
	return rows
}
