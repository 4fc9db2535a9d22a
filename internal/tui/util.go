package tui

import "github.com/mattn/go-runewidth"

// fit truncates s to at most w display columns.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "…")
}
