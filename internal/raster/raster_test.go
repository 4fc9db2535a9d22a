package raster

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(w, h int, v uint8) PixelBuffer {
	pix := make([]uint8, w*h)
	for i := range pix {
		pix[i] = v
	}
	return PixelBuffer{Width: w, Height: h, Pix: pix}
}

func TestRasterize_dimensions(t *testing.T) {
	for _, tc := range []struct {
		w, h       int
		rows, cols int
	}{
		{1, 1, 1, 1},
		{2, 4, 1, 1},
		{3, 5, 2, 2},
		{8, 8, 2, 4},
		{7, 13, 4, 4},
		{100, 3, 1, 50},
	} {
		g, err := Rasterize(filled(tc.w, tc.h, 0), DefaultThreshold)
		require.NoError(t, err)
		assert.Equal(t, tc.rows, g.Rows(), "%dx%d rows", tc.w, tc.h)
		assert.Equal(t, tc.cols, g.Cols(), "%dx%d cols", tc.w, tc.h)
		for i, l := range g.Lines() {
			assert.Equal(t, tc.cols, len([]rune(l)), "%dx%d row %d", tc.w, tc.h, i)
		}
	}
}

func TestRasterize_uniform(t *testing.T) {
	white, err := Rasterize(filled(6, 8, 255), DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, []string{"   ", "   "}, white.Lines())

	black, err := Rasterize(filled(6, 8, 0), DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, []string{"⣿⣿⣿", "⣿⣿⣿"}, black.Lines())
}

func TestRasterize_thresholdIsStrict(t *testing.T) {
	g, err := Rasterize(filled(2, 4, 128), 128)
	require.NoError(t, err)
	assert.Equal(t, " ", g.Row(0))

	g, err = Rasterize(filled(2, 4, 127), 128)
	require.NoError(t, err)
	assert.Equal(t, string(Glyph(0xff)), g.Row(0))
}

func TestRasterize_dotOrder(t *testing.T) {
	// one ink pixel at a time inside a single 2x4 cell
	for _, tc := range []struct {
		x, y int
		want rune
	}{
		{0, 0, '⠁'},
		{0, 1, '⠂'},
		{0, 2, '⠄'},
		{1, 0, '⠈'},
		{1, 1, '⠐'},
		{1, 2, '⠠'},
		{0, 3, '⡀'},
		{1, 3, '⢀'},
	} {
		pb := filled(2, 4, 255)
		pb.Pix[tc.y*2+tc.x] = 0
		g, err := Rasterize(pb, DefaultThreshold)
		require.NoError(t, err)
		assert.Equal(t, string(tc.want), g.Row(0), "pixel (%d,%d)", tc.x, tc.y)
	}
}

func TestRasterize_partialBlocksArePaper(t *testing.T) {
	// 3x5 all ink: the last column and row only cover part of a cell
	g, err := Rasterize(filled(3, 5, 0), DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, []string{"⣿⡇", "⠉⠁"}, g.Lines())
}

func TestRasterize_deterministic(t *testing.T) {
	pb := PixelBuffer{Width: 9, Height: 7, Pix: make([]uint8, 63)}
	for i := range pb.Pix {
		pb.Pix[i] = uint8(i * 37)
	}
	a, err := Rasterize(pb, 100)
	require.NoError(t, err)
	b, err := Rasterize(pb, 100)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestRasterize_malformed(t *testing.T) {
	for _, pb := range []PixelBuffer{
		{Width: 2, Height: 2, Pix: make([]uint8, 3)},
		{Width: 2, Height: 2, Pix: nil},
		{Width: -1, Height: 2, Pix: nil},
	} {
		_, err := Rasterize(pb, DefaultThreshold)
		assert.ErrorIs(t, err, ErrMalformedBuffer)
	}
}

func TestRasterize_empty(t *testing.T) {
	g, err := Rasterize(PixelBuffer{}, DefaultThreshold)
	require.NoError(t, err)
	assert.True(t, g.Empty())
	assert.Equal(t, 0, g.Rows())

	g, err = Rasterize(PixelBuffer{Width: 0, Height: 8}, DefaultThreshold)
	require.NoError(t, err)
	assert.True(t, g.Empty())
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 0, g.Cols())
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 14, 12))
	img.Set(10, 10, color.Black)
	img.Set(11, 10, color.White)
	// (12,10) left transparent
	img.Set(13, 11, color.NRGBA{R: 255, A: 255})

	pb := FromImage(img)
	require.NoError(t, pb.Validate())
	assert.Equal(t, 4, pb.Width)
	assert.Equal(t, 2, pb.Height)
	assert.Equal(t, uint8(0), pb.Pix[0])
	assert.Equal(t, uint8(255), pb.Pix[1])
	assert.Equal(t, uint8(255), pb.Pix[2], "transparent reads as paper")
	assert.Less(t, pb.Pix[7], DefaultThreshold, "pure red is darker than mid gray")
}

func TestGrid_window(t *testing.T) {
	g := ParseGrid("abcd\nefgh\nijkl")
	assert.Equal(t, []string{"fg", "jk"}, g.Window(1, 1, 5, 2))
	assert.Equal(t, []string{"d"}, g.Window(0, 3, 1, 4))
	assert.Nil(t, g.Window(3, 0, 1, 1))
	assert.Nil(t, g.Window(0, 0, 0, 4))
}

func TestGrid_roundTrip(t *testing.T) {
	pb := PixelBuffer{Width: 11, Height: 9, Pix: make([]uint8, 99)}
	for i := range pb.Pix {
		pb.Pix[i] = uint8((i * 53) % 256)
	}
	g, err := Rasterize(pb, DefaultThreshold)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Rows(), strings.Count(buf.String(), "\n"))

	back, err := ReadGrid(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Lines(), back.Lines())
	assert.True(t, g.Equal(ParseGrid(g.String())))
}

func TestParseGrid_padsJaggedRows(t *testing.T) {
	g := ParseGrid("⣿⣿\r\n⣿\n")
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, []string{"⣿⣿", "⣿ "}, g.Lines())
}
