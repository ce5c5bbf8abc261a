package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and height lines
// tall, so the footer always lands on the last row.
func normalizePane(s string, width, height int) string {
	width = max(width, 0)
	height = max(height, 0)

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i, ln := range lines {
		ln = truncateLine(ln, width)
		if w := xansi.StringWidth(ln); w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}

// truncateLine cuts ln to width columns, marking the cut with an ellipsis.
func truncateLine(ln string, width int) string {
	// Huge raw lines are cut before measuring; StringWidth is slow on them.
	if width > 0 && len(ln) > 8192 {
		ln = xansi.Cut(ln, 0, width)
	}
	if xansi.StringWidth(ln) <= width {
		return ln
	}
	switch {
	case width <= 0:
		return ""
	case width == 1:
		return xansi.Cut(ln, 0, 1)
	default:
		return xansi.Cut(ln, 0, width-1) + "…"
	}
}
