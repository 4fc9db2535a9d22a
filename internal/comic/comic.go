// Package comic fetches comics and decodes their images into pixel buffers.
package comic

import (
	"context"
	"errors"
	"fmt"

	"xkcdterm/internal/raster"
)

// Comic is one fetched comic. PrevID and NextID are zero when there is no
// neighbour. Grid is set instead of Pixels when the comic was loaded from a
// saved glyph capture.
type Comic struct {
	ID       int
	Title    string
	Caption  string
	PrevID   int
	NextID   int
	ImageURL string
	Origin   string // page URL or file path
	Pixels   raster.PixelBuffer
	Grid     *raster.Grid
}

// Render returns the comic's glyph grid.
func (c *Comic) Render(threshold uint8) (raster.Grid, error) {
	if c.Grid != nil {
		return *c.Grid, nil
	}
	return raster.Rasterize(c.Pixels, threshold)
}

// Source loads comics. Fetch with id 0 loads the latest comic.
type Source interface {
	Fetch(ctx context.Context, id int) (*Comic, error)
	Random(ctx context.Context) (*Comic, error)
}

var (
	// ErrNoComic is wrapped when the site has no comic with the requested id.
	ErrNoComic = errors.New("no such comic")
	// ErrNoImage is returned for pages without a comic image.
	ErrNoImage = errors.New("page has no comic image")
	// ErrTooLarge is wrapped when a page or image exceeds its size limit.
	ErrTooLarge = errors.New("response too large")
)

// FetchError reports a failure to retrieve or understand a comic page.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports image bytes that could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
