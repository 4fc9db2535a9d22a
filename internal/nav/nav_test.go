package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"xkcdterm/internal/viewport"
)

func TestRequest_routing(t *testing.T) {
	for _, tc := range []struct {
		req     Request
		dir     viewport.Direction
		scrolls bool
		fetches bool
	}{
		{Request{Kind: Up}, viewport.Up, true, false},
		{Request{Kind: Down}, viewport.Down, true, false},
		{Request{Kind: Left}, viewport.Left, true, false},
		{Request{Kind: Right}, viewport.Right, true, false},
		{Request{Kind: Next}, 0, false, true},
		{Request{Kind: Prev}, 0, false, true},
		{Request{Kind: Random}, 0, false, true},
		{Request{Kind: Jump, ID: 1626}, 0, false, true},
		{Request{Kind: Quit}, 0, false, false},
	} {
		dir, ok := tc.req.Direction()
		assert.Equal(t, tc.scrolls, ok, tc.req.String())
		if ok {
			assert.Equal(t, tc.dir, dir, tc.req.String())
		}
		assert.Equal(t, tc.fetches, tc.req.Fetches(), tc.req.String())
	}
}

func TestRequest_String(t *testing.T) {
	assert.Equal(t, "jump(1626)", Request{Kind: Jump, ID: 1626}.String())
	assert.Equal(t, "next", Request{Kind: Next}.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
