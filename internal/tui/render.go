package tui

import (
	"fmt"
	"strings"

	"xkcdterm/internal/comic"
	"xkcdterm/internal/raster"
	"xkcdterm/internal/viewport"
	"xkcdterm/internal/wrap"
)

// frame is one screenful of the image area.
type frame struct {
	term     viewport.Size
	layout   viewport.Layout
	header   string
	title    string
	messages []string
	image    []string
	caption  []string
	footer   string
}

// lines places every part of the frame on its terminal row: header on row
// 0, title on row 1, messages below it, the image window at the top margin,
// the caption right above the last row and the footer on the last row.
func (f frame) lines() []string {
	out := make([]string, f.term.Rows)
	put := func(row int, s string) {
		if row >= 0 && row < len(out) {
			out[row] = s
		}
	}
	left := strings.Repeat(" ", f.layout.Left)
	textW := f.layout.VisibleCols
	edgeW := max(0, f.term.Cols-f.layout.Left)

	put(0, f.header)
	if f.title != "" {
		put(1, left+titleStyle.Render(fit(f.title, textW)))
	}
	for i, msg := range f.messages {
		put(2+i, left+messageStyle.Render(fit(msg, textW)))
	}
	for i, row := range f.image {
		put(f.layout.Top+i, left+row)
	}
	// over-long words may run into the right margin, never past the edge
	capRow := f.layout.CaptionRow(f.term)
	for i, l := range f.caption {
		if l != "" {
			put(capRow+i, left+captionStyle.Render(fit(l, edgeW)))
		}
	}
	if f.footer != "" {
		put(f.term.Rows-1, f.footer)
	}
	return out
}

func (f frame) String() string {
	return strings.Join(f.lines(), "\n")
}

func composeFrame(e *viewport.Engine, c *comic.Comic, g raster.Grid, caption, messages []string, term viewport.Size) frame {
	row, col, rows, cols := e.Window()
	f := frame{
		term:     term,
		layout:   e.Layout(),
		messages: messages,
		image:    g.Window(row, col, rows, cols),
		caption:  caption,
	}
	if c != nil {
		f.title = titleLine(c)
	}
	return f
}

func titleLine(c *comic.Comic) string {
	if c.ID > 0 {
		return fmt.Sprintf("Title: %s  #%d", c.Title, c.ID)
	}
	return "Title: " + c.Title
}

// Snapshot renders a single frame of c for a terminal of the given size,
// scrolled to the top-left corner.
func Snapshot(c *comic.Comic, g raster.Grid, vp viewport.Config, term viewport.Size) string {
	e := viewport.NewEngine(vp)
	e.SetContent(g.Rows(), g.Cols())
	caption, err := wrap.Wrap(c.Caption, max(1, term.Cols-vp.MarginLeft-vp.MarginRight))
	if err != nil {
		caption = []string{""}
	}
	e.Relayout(term, 0, len(caption))
	return composeFrame(e, c, g, caption, nil, term).String()
}
