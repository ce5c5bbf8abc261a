package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderPromptLine draws the KlayverOS prompt row: a single visual line, padded to
// width on the input background.
func renderPromptLine(width int, inputView string) string {
	width = max(width, 10)

	// A wrapped prompt looks like a newline was typed.
	inputView = strings.NewReplacer("\n", " ", "\r", " ").Replace(inputView)

	line := lipgloss.PlaceHorizontal(
		width,
		lipgloss.Left,
		" "+inputView,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > width {
		// Reset styling so a cut escape sequence cannot bleed into the footer.
		line = xansi.Cut(line, 0, width) + "\x1b[0m"
	}
	return line
}
