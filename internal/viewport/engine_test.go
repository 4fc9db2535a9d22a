package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// engineShowing returns an engine over a grid whose visible window is
// exactly shownRows x shownCols.
func engineShowing(gridRows, gridCols, shownRows, shownCols int) *Engine {
	cfg := DefaultConfig()
	e := NewEngine(cfg)
	e.SetContent(gridRows, gridCols)
	term := Size{
		Rows: shownRows + cfg.TopIdle + cfg.BottomBase + 1,
		Cols: shownCols + cfg.MarginLeft + cfg.MarginRight,
	}
	e.Relayout(term, 0, 1)
	return e
}

func TestEngine_downClampsAtBottom(t *testing.T) {
	e := engineShowing(20, 20, 10, 20)
	require.Equal(t, 10, e.Layout().ShownRows)

	var rows []int
	var edges []bool
	for i := 0; i < 4; i++ {
		s, edge := e.Apply(Down)
		rows = append(rows, s.Row)
		edges = append(edges, edge)
	}
	assert.Equal(t, []int{5, 10, 10, 10}, rows)
	assert.Equal(t, []bool{false, false, true, true}, edges)
}

func TestEngine_upClampsAtTop(t *testing.T) {
	e := engineShowing(20, 20, 10, 20)
	e.Apply(Down)
	e.Apply(Down)

	s, edge := e.Apply(Up)
	assert.Equal(t, State{Row: 5}, s)
	assert.False(t, edge)
	s, edge = e.Apply(Up)
	assert.Equal(t, State{}, s)
	assert.False(t, edge)
	s, edge = e.Apply(Up)
	assert.Equal(t, State{}, s)
	assert.True(t, edge)
}

func TestEngine_partialStepClamps(t *testing.T) {
	e := engineShowing(13, 8, 10, 5)
	s, edge := e.Apply(Down)
	assert.Equal(t, 3, s.Row)
	assert.True(t, edge)

	s, edge = e.Apply(Right)
	assert.Equal(t, State{Row: 3, Col: 3}, s)
	assert.True(t, edge)

	s, edge = e.Apply(Left)
	assert.Equal(t, State{Row: 3, Col: 0}, s)
	assert.True(t, edge)
}

func TestEngine_axesAreIndependent(t *testing.T) {
	e := engineShowing(100, 100, 10, 10)
	e.Apply(Right)
	e.Apply(Right)
	s, _ := e.Apply(Down)
	assert.Equal(t, State{Row: 5, Col: 10}, s)
	s, _ = e.Apply(Left)
	assert.Equal(t, State{Row: 5, Col: 5}, s)
}

func TestEngine_gridSmallerThanWindow(t *testing.T) {
	e := engineShowing(4, 4, 10, 10)
	assert.Equal(t, 4, e.Layout().ShownRows)
	for _, d := range []Direction{Up, Down, Left, Right} {
		s, edge := e.Apply(d)
		assert.Equal(t, State{}, s, d.String())
		assert.True(t, edge, d.String())
	}
}

func TestEngine_setContentResets(t *testing.T) {
	e := engineShowing(100, 100, 10, 10)
	e.Apply(Down)
	e.Apply(Right)
	require.NotEqual(t, State{}, e.State())

	e.SetContent(50, 50)
	assert.Equal(t, State{}, e.State())
	assert.Equal(t, 50, e.gridRows)
	assert.Equal(t, 50, e.gridCols)
}

func TestEngine_relayoutKeepsValidOffset(t *testing.T) {
	e := engineShowing(100, 100, 10, 10)
	e.Apply(Down)
	e.Apply(Right)

	e.Relayout(Size{Rows: 40, Cols: 60}, 0, 1)
	assert.Equal(t, State{Row: 5, Col: 5}, e.State())
}

func TestEngine_relayoutPullsOffsetBack(t *testing.T) {
	e := engineShowing(20, 20, 10, 10)
	for i := 0; i < 3; i++ {
		e.Apply(Down)
		e.Apply(Right)
	}
	require.Equal(t, State{Row: 10, Col: 10}, e.State())

	// window grows to 15x15: the furthest valid offset is now 5
	e.Relayout(Size{Rows: 15 + 4 + 3, Cols: 15 + 10}, 0, 1)
	assert.Equal(t, State{Row: 5, Col: 5}, e.State())

	row, col, rows, cols := e.Window()
	assert.Equal(t, []int{5, 5, 15, 15}, []int{row, col, rows, cols})
}

func TestEngine_customSteps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StepRows, cfg.StepCols = 1, 3
	e := NewEngine(cfg)
	e.SetContent(50, 50)
	e.Relayout(Size{Rows: 20, Cols: 30}, 0, 0)

	s, _ := e.Apply(Down)
	assert.Equal(t, 1, s.Row)
	s, _ = e.Apply(Right)
	assert.Equal(t, 3, s.Col)
}
