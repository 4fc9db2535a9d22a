package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshInfo rebuilds the info table from the current comic.
func (m *Model) refreshInfo() {
	if m.comic == nil {
		m.tbl.SetRows([]table.Row{{"", "no comic loaded"}})
		return
	}
	c := m.comic
	num := func(n int) string {
		if n == 0 {
			return "-"
		}
		return strconv.Itoa(n)
	}
	s := m.engine.State()
	rows := []table.Row{
		{"ID", num(c.ID)},
		{"Title", c.Title},
		{"Prev", num(c.PrevID)},
		{"Next", num(c.NextID)},
		{"Image", c.ImageURL},
		{"Origin", c.Origin},
		{"Pixels", fmt.Sprintf("%dx%d", c.Pixels.Width, c.Pixels.Height)},
		{"Grid", fmt.Sprintf("%dx%d", m.grid.Cols(), m.grid.Rows())},
		{"Offset", fmt.Sprintf("row %d, col %d", s.Row, s.Col)},
	}
	for _, r := range rows {
		r[1] = fit(r[1], 48)
	}
	m.tbl.SetRows(rows)
	m.tbl.SetHeight(len(rows) + 1)
}
