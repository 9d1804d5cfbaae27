// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis
// when anything was cut. Newlines are folded to spaces first.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available <= 0 {
		return TruncateEllipsis
	}
	var b strings.Builder
	width := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if width+w > available {
			break
		}
		b.WriteRune(r)
		width += w
	}
	return b.String() + TruncateEllipsis
}

// PadRightVisual pads s with spaces to targetWidth columns, truncating when
// it is already wider.
func PadRightVisual(s string, targetWidth int) string {
	if VisualWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillRight(s, targetWidth)
}
