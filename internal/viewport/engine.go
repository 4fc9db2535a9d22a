package viewport

import "fmt"

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// State is the grid cell shown in the top-left corner of the viewport.
type State struct {
	Row int
	Col int
}

// Engine owns the scroll state for one grid at a time. It is not safe for
// concurrent use.
type Engine struct {
	cfg      Config
	state    State
	gridRows int
	gridCols int
	layout   Layout
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// State returns the current offset.
func (e *Engine) State() State { return e.state }

// Layout returns the layout from the last Relayout, clamped to the grid.
func (e *Engine) Layout() Layout { return e.layout }

// SetContent switches to a new grid and scrolls back to its top-left corner.
func (e *Engine) SetContent(rows, cols int) {
	e.gridRows, e.gridCols = max(0, rows), max(0, cols)
	e.state = State{}
	e.layout = e.layout.Clamp(e.gridRows, e.gridCols)
}

// Relayout recomputes the layout after a resize or a change of caption or
// messages. The offset is kept, pulled back only as far as needed to stay
// inside the grid.
func (e *Engine) Relayout(term Size, messages, captionLines int) Layout {
	e.layout = ComputeLayout(e.cfg, term, messages, captionLines).Clamp(e.gridRows, e.gridCols)
	e.state.Row = clamp(e.state.Row, 0, e.maxRow())
	e.state.Col = clamp(e.state.Col, 0, e.maxCol())
	return e.layout
}

// Apply scrolls one step in d. edgeHit reports that the step would have
// left the grid; the offset is clamped either way.
func (e *Engine) Apply(d Direction) (s State, edgeHit bool) {
	switch d {
	case Up:
		e.state.Row, edgeHit = step(e.state.Row, -e.cfg.StepRows, e.maxRow())
	case Down:
		e.state.Row, edgeHit = step(e.state.Row, e.cfg.StepRows, e.maxRow())
	case Left:
		e.state.Col, edgeHit = step(e.state.Col, -e.cfg.StepCols, e.maxCol())
	case Right:
		e.state.Col, edgeHit = step(e.state.Col, e.cfg.StepCols, e.maxCol())
	}
	return e.state, edgeHit
}

// Window returns the grid rectangle currently on screen.
func (e *Engine) Window() (row, col, rows, cols int) {
	return e.state.Row, e.state.Col, e.layout.ShownRows, e.layout.ShownCols
}

func (e *Engine) maxRow() int { return max(0, e.gridRows-e.layout.ShownRows) }
func (e *Engine) maxCol() int { return max(0, e.gridCols-e.layout.ShownCols) }

func step(off, delta, hi int) (int, bool) {
	want := off + delta
	return clamp(want, 0, hi), want < 0 || want > hi
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
