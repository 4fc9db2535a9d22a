package comic

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"xkcdterm/internal/raster"
)

// ImageExts lists the extensions decoded as images. Any other file is read
// as a saved glyph grid.
var ImageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true, ".bmp": true,
}

// sidecar is the optional <name>.yaml next to a local comic.
type sidecar struct {
	ID      int    `yaml:"id"`
	Title   string `yaml:"title"`
	Caption string `yaml:"caption"`
	Prev    int    `yaml:"prev"`
	Next    int    `yaml:"next"`
}

// LoadFile loads a local image or grid capture. Title and caption come from
// a sidecar YAML file with the same base name when present.
func LoadFile(path string, maxWidth int) (*Comic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FetchError{URL: path, Err: err}
	}
	defer f.Close()

	c := &Comic{Title: filepath.Base(path), Origin: path}
	if ImageExts[strings.ToLower(filepath.Ext(path))] {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, &FetchError{URL: path, Err: err}
		}
		pix, err := Decode(data, maxWidth)
		if err != nil {
			return nil, err
		}
		c.Pixels = pix
	} else {
		g, err := raster.ReadGrid(f)
		if err != nil {
			return nil, &FetchError{URL: path, Err: err}
		}
		c.Grid = &g
	}

	meta, err := readSidecar(path)
	if err != nil {
		return nil, &FetchError{URL: path, Err: err}
	}
	if meta != nil {
		c.ID, c.Caption, c.PrevID, c.NextID = meta.ID, meta.Caption, meta.Prev, meta.Next
		if meta.Title != "" {
			c.Title = meta.Title
		}
	}
	return c, nil
}

func readSidecar(path string) (*sidecar, error) {
	p := strings.TrimSuffix(path, filepath.Ext(path)) + ".yaml"
	if p == path {
		return nil, nil
	}
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s sidecar
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", p, err)
	}
	return &s, nil
}

// FileSource serves a single local file regardless of the requested id.
// It stands in for the network when browsing offline.
type FileSource struct {
	Path     string
	MaxWidth int
}

func (s FileSource) Fetch(ctx context.Context, _ int) (*Comic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(s.Path, s.MaxWidth)
}

func (s FileSource) Random(ctx context.Context) (*Comic, error) {
	return s.Fetch(ctx, 0)
}
