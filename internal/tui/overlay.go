package tui

import (
	"strings"

	"portfolio-cli/internal/model"
	"portfolio-cli/internal/viewstate"

	"github.com/charmbracelet/lipgloss"
)

// renderOverlay draws the project detail shown on top of Graphical Mode. The live demo
// link only appears when the project has a real one.
func renderOverlay(p model.Project, width int, theme viewstate.Theme) string {
	width = max(width, 24)
	bodyW := width - 4

	label := lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	link := lipgloss.NewStyle().Foreground(colorAccent).Underline(true)
	wrap := lipgloss.NewStyle().Width(bodyW)

	var techs []string
	for _, t := range p.Technologies {
		techs = append(techs, styleChip(false).Render(t))
	}

	blocks := []string{
		styleHeading().Render(p.Title),
		styleMuted().Render(string(p.Category)),
		wrap.Render(strings.Join(techs, " ")),
		label.Render("O Problema") + "\n" + wrap.Render(p.Problem),
		label.Render("A Solução") + "\n" + wrap.Render(p.Solution),
	}
	if md := renderMarkdown(p.LongDescription, bodyW, theme); md != "" {
		blocks = append(blocks, label.Render("Detalhes")+"\n"+md)
	}

	links := []string{"Repositório: " + link.Render(p.RepoURL)}
	if p.HasLiveDemo() {
		links = append(links, "Demo ao vivo: "+link.Render(*p.LiveURL))
	}
	if p.GifURL != "" {
		links = append(links, "Demonstração: "+link.Render(p.GifURL))
	}
	blocks = append(blocks, strings.Join(links, "\n"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSelectedBorder).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(blocks, "\n\n"))
}
