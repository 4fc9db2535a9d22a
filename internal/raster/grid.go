package raster

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Grid is an immutable block of glyph rows, all the same length. The zero
// value is an empty grid.
type Grid struct {
	rows [][]rune
	cols int
}

// Rows returns the number of glyph rows.
func (g Grid) Rows() int { return len(g.rows) }

// Cols returns the number of glyphs in every row.
func (g Grid) Cols() int { return g.cols }

// Empty reports whether the grid has no cells.
func (g Grid) Empty() bool { return len(g.rows) == 0 || g.cols == 0 }

// Row returns row i as a string.
func (g Grid) Row(i int) string {
	if i < 0 || i >= len(g.rows) {
		return ""
	}
	return string(g.rows[i])
}

// Lines returns every row as a string.
func (g Grid) Lines() []string {
	out := make([]string, len(g.rows))
	for i := range g.rows {
		out[i] = g.Row(i)
	}
	return out
}

// Window returns the h x w sub-rectangle whose top-left cell is (row, col),
// cut down to what the grid actually holds.
func (g Grid) Window(row, col, h, w int) []string {
	row = max(0, row)
	col = max(0, col)
	if h <= 0 || w <= 0 || row >= len(g.rows) || col >= g.cols {
		return nil
	}
	endRow := min(len(g.rows), row+h)
	endCol := min(g.cols, col+w)
	out := make([]string, 0, endRow-row)
	for _, r := range g.rows[row:endRow] {
		out = append(out, string(r[col:endCol]))
	}
	return out
}

// Equal reports whether both grids hold the same glyphs.
func (g Grid) Equal(o Grid) bool {
	if len(g.rows) != len(o.rows) || g.cols != o.cols {
		return false
	}
	for i := range g.rows {
		if string(g.rows[i]) != string(o.rows[i]) {
			return false
		}
	}
	return true
}

// String joins the rows with newlines.
func (g Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// WriteTo writes the grid as a fixture: every row followed by a newline,
// no header.
func (g Grid) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, r := range g.rows {
		k, err := bw.WriteString(string(r) + "\n")
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// ParseGrid rebuilds a grid from newline-separated rows. A single trailing
// newline is ignored. Short rows are padded with the background glyph.
func ParseGrid(s string) Grid {
	if s == "" {
		return Grid{}
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	rows := make([][]rune, len(lines))
	cols := 0
	for i, l := range lines {
		rows[i] = []rune(strings.TrimSuffix(l, "\r"))
		cols = max(cols, len(rows[i]))
	}
	for i, r := range rows {
		for len(r) < cols {
			r = append(r, Background)
		}
		rows[i] = r
	}
	return Grid{rows: rows, cols: cols}
}

// ReadGrid reads a grid fixture.
func ReadGrid(r io.Reader) (Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Grid{}, fmt.Errorf("read grid: %w", err)
	}
	return ParseGrid(string(data)), nil
}
