package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayout(t *testing.T) {
	cfg := DefaultConfig()
	for _, tc := range []struct {
		name         string
		term         Size
		messages     int
		captionLines int
		want         Layout
	}{
		{
			name: "no messages", term: Size{Rows: 30, Cols: 100}, captionLines: 2,
			want: Layout{Top: 4, Bottom: 4, Left: 5, Right: 5, VisibleRows: 22, VisibleCols: 90},
		},
		{
			name: "one message", term: Size{Rows: 30, Cols: 100}, messages: 1, captionLines: 2,
			want: Layout{Top: 4, Bottom: 4, Left: 5, Right: 5, VisibleRows: 22, VisibleCols: 90},
		},
		{
			name: "three messages", term: Size{Rows: 30, Cols: 100}, messages: 3, captionLines: 1,
			want: Layout{Top: 6, Bottom: 3, Left: 5, Right: 5, VisibleRows: 21, VisibleCols: 90},
		},
		{
			name: "tiny terminal", term: Size{Rows: 5, Cols: 8}, captionLines: 4,
			want: Layout{Top: 4, Bottom: 6, Left: 5, Right: 5},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeLayout(cfg, tc.term, tc.messages, tc.captionLines))
		})
	}
}

func TestLayout_Clamp(t *testing.T) {
	l := ComputeLayout(DefaultConfig(), Size{Rows: 30, Cols: 100}, 0, 2)

	small := l.Clamp(10, 40)
	assert.Equal(t, 10, small.ShownRows)
	assert.Equal(t, 40, small.ShownCols)

	big := l.Clamp(500, 500)
	assert.Equal(t, 22, big.ShownRows)
	assert.Equal(t, 90, big.ShownCols)
}

func TestLayout_CaptionRow(t *testing.T) {
	term := Size{Rows: 30, Cols: 100}
	l := ComputeLayout(DefaultConfig(), term, 0, 2)
	assert.Equal(t, 27, l.CaptionRow(term))
}
