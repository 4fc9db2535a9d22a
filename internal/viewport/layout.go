// Package viewport computes the terminal layout around a glyph grid and
// keeps the scroll offset of the visible window inside the grid.
package viewport

// Config holds the reserved margins and scroll steps.
type Config struct {
	MarginLeft  int // columns left of the image
	MarginRight int // columns right of the image
	TopIdle     int // rows above the image when there are no messages
	TopBase     int // rows above the image before message lines
	BottomBase  int // rows below the image before caption lines
	StepRows    int
	StepCols    int
}

// DefaultConfig returns the classic layout: five columns either side, title
// on row 1 and a step of five cells per key press.
func DefaultConfig() Config {
	return Config{
		MarginLeft:  5,
		MarginRight: 5,
		TopIdle:     4,
		TopBase:     3,
		BottomBase:  2,
		StepRows:    5,
		StepCols:    5,
	}
}

// Size is a terminal size in cells.
type Size struct {
	Rows int
	Cols int
}

// Layout is the screen split for one frame. Shown* are only filled in by
// Clamp; until then they are zero.
type Layout struct {
	Top, Bottom, Left, Right int
	VisibleRows, VisibleCols int
	ShownRows, ShownCols     int
}

// ComputeLayout derives the margins and the space left for the image from
// the terminal size, the pending status messages and the caption height.
func ComputeLayout(cfg Config, term Size, messages, captionLines int) Layout {
	l := Layout{
		Top:    cfg.TopIdle,
		Bottom: cfg.BottomBase + max(0, captionLines),
		Left:   cfg.MarginLeft,
		Right:  cfg.MarginRight,
	}
	if messages > 0 {
		l.Top = cfg.TopBase + messages
	}
	l.VisibleRows = max(0, term.Rows-l.Top-l.Bottom)
	l.VisibleCols = max(0, term.Cols-l.Left-l.Right)
	return l
}

// Clamp limits the displayed window to the grid's own extent.
func (l Layout) Clamp(gridRows, gridCols int) Layout {
	l.ShownRows = min(l.VisibleRows, max(0, gridRows))
	l.ShownCols = min(l.VisibleCols, max(0, gridCols))
	return l
}

// CaptionRow returns the terminal row of the first caption line.
func (l Layout) CaptionRow(term Size) int {
	return term.Rows - l.Bottom + 1
}
