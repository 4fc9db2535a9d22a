// Package raster turns grayscale pixel buffers into braille glyph grids.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// DefaultThreshold separates ink from paper: pixels strictly darker are dots.
const DefaultThreshold uint8 = 128

// ErrMalformedBuffer is returned when a buffer's sample count does not match
// its dimensions.
var ErrMalformedBuffer = errors.New("malformed pixel buffer")

// PixelBuffer is a row-major 8-bit grayscale image.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// Validate reports whether the buffer holds exactly Width*Height samples.
func (pb PixelBuffer) Validate() error {
	if pb.Width < 0 || pb.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrMalformedBuffer, pb.Width, pb.Height)
	}
	if len(pb.Pix) != pb.Width*pb.Height {
		return fmt.Errorf("%w: %d samples for %dx%d", ErrMalformedBuffer, len(pb.Pix), pb.Width, pb.Height)
	}
	return nil
}

// Rasterize renders pb as a grid of ceil(Height/4) rows by ceil(Width/2)
// glyphs. Each glyph covers a 2x4 pixel block; pixels past the right or
// bottom edge count as paper.
func Rasterize(pb PixelBuffer, threshold uint8) (Grid, error) {
	if err := pb.Validate(); err != nil {
		return Grid{}, err
	}
	br := newBrailleBuf((pb.Width+1)/2, (pb.Height+3)/4)
	for y := 0; y < pb.Height; y++ {
		line := pb.Pix[y*pb.Width : (y+1)*pb.Width]
		for x, v := range line {
			if v < threshold {
				br.setPixel(x, y)
			}
		}
	}
	return br.toGrid(), nil
}

// FromImage flattens img onto white paper and converts it to 8-bit gray.
// Transparent regions therefore read as background, not ink.
func FromImage(img image.Image) PixelBuffer {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Over)
	pix := make([]uint8, b.Dx()*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		copy(pix[y*b.Dx():(y+1)*b.Dx()], gray.Pix[y*gray.Stride:y*gray.Stride+b.Dx()])
	}
	return PixelBuffer{Width: b.Dx(), Height: b.Dy(), Pix: pix}
}
