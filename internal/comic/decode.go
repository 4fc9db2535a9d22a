package comic

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"xkcdterm/internal/raster"
)

// Decode decodes PNG, JPEG, GIF, WebP or BMP data into a grayscale buffer.
// Images wider than maxWidth pixels are scaled down first; maxWidth 0 keeps
// the original size.
func Decode(data []byte, maxWidth int) (raster.PixelBuffer, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return raster.PixelBuffer{}, &DecodeError{Err: err}
	}
	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}
	return raster.FromImage(img), nil
}
