// Package wrap reflows caption text into fixed-width lines.
package wrap

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrInvalidWidth is returned for a target width below one column.
var ErrInvalidWidth = errors.New("wrap width must be at least 1")

var whitespace = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// Wrap greedily packs the space-separated words of text into lines of at
// most width display columns. A word wider than width is kept whole on its
// own line. Empty text yields a single empty line.
func Wrap(text string, width int) ([]string, error) {
	if width < 1 {
		return nil, ErrInvalidWidth
	}
	words := strings.Split(whitespace.Replace(text), " ")

	var lines []string
	var line strings.Builder
	lineW := 0
	for _, word := range words {
		w := runewidth.StringWidth(word)
		switch {
		case lineW == 0:
			line.WriteString(word)
			lineW = w
		case lineW+1+w <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineW += 1 + w
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineW = w
		}
	}
	return append(lines, line.String()), nil
}
