package tui

import (
	"strings"

	"portfolio-cli/internal/terminal"

	"github.com/charmbracelet/lipgloss"
)

// renderScrollback draws Terminal Mode entries. Input lines carry the prompt, as they
// were typed.
func renderScrollback(entries []terminal.Entry, width int) string {
	wrap := lipgloss.NewStyle().Width(max(width, 10))
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		text := e.Text
		if e.Kind == terminal.KindInput {
			text = terminal.Prompt + " " + text
		}
		lines = append(lines, wrap.Render(styleEntry(e.Kind).Render(text)))
	}
	return strings.Join(lines, "\n")
}
