package raster

// glyphs maps a 2x4 dot mask to its printable glyph. An empty cell renders
// as a plain space so blank paper stays blank on every terminal font.
var glyphs = func() [256]rune {
	var t [256]rune
	t[0] = ' '
	for m := 1; m < len(t); m++ {
		t[m] = rune(0x2800 + m)
	}
	return t
}()

// Glyph returns the glyph for a dot mask.
func Glyph(mask uint8) rune { return glyphs[mask] }

// Background is the glyph of an empty cell.
var Background = glyphs[0x00]

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dotBit returns the mask bit for a micro-pixel inside its cell, following
// the braille dot numbering: 1-3 down the left column, 4-6 down the right,
// then 7 and 8 along the bottom row.
func dotBit(rx, ry int) uint8 {
	if rx == 0 {
		switch ry {
		case 0:
			return 0x01
		case 1:
			return 0x02
		case 2:
			return 0x04
		case 3:
			return 0x40
		}
		return 0
	}
	switch ry {
	case 0:
		return 0x08
	case 1:
		return 0x10
	case 2:
		return 0x20
	case 3:
		return 0x80
	}
	return 0
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBit(rx, ry)
}

func (b *brailleBuf) toGrid() Grid {
	rows := make([][]rune, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = Glyph(b.m[y][x])
		}
		rows[y] = row
	}
	return Grid{rows: rows, cols: b.w}
}
