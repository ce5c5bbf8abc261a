package tui

import (
	"fmt"
	"strings"

	"portfolio-cli/internal/model"
	"portfolio-cli/internal/viewstate"

	"github.com/charmbracelet/lipgloss"
)

// pageContent is everything Graphical Mode draws besides the overlay.
type pageContent struct {
	profile  model.Profile
	timeline []model.TimelineEvent
	skills   []model.SkillGroup

	categories []model.Category
	filter     int
	projects   []model.Project // already filtered
	selected   int
	theme      viewstate.Theme
}

// renderPage returns the page and the line where the selected card starts (-1 when
// the grid is empty), so the caller can keep the selection scrolled into view.
func renderPage(pc pageContent, width int) (string, int) {
	width = max(width, 20)
	var sections []string

	sections = append(sections, renderHero(pc.profile, pc.theme, width))
	sections = append(sections, renderAbout(pc.profile, width))
	sections = append(sections, renderTimeline(pc.timeline, width))
	sections = append(sections, renderSkills(pc.skills, width))

	head := strings.Join(sections, "\n\n") + "\n\n"
	grid, selLine := renderProjects(pc, width)
	if selLine >= 0 {
		selLine += lipgloss.Height(head) - 1
	}

	return head + grid + "\n\n" + renderContact(pc.profile), selLine
}

func renderHero(p model.Profile, theme viewstate.Theme, width int) string {
	badge := styleChip(true).Render(p.Initials)
	name := styleHeading().Render(p.Name)
	right := styleMuted().Render("tema: " + themeLabel(theme))
	gap := max(1, width-lipgloss.Width(badge)-lipgloss.Width(name)-lipgloss.Width(right)-2)
	top := badge + " " + name + strings.Repeat(" ", gap) + right

	lines := []string{top, "", styleAccent().Render(p.Headline), styleMuted().Render(p.Tagline)}
	return strings.Join(lines, "\n")
}

func renderAbout(p model.Profile, width int) string {
	body := lipgloss.NewStyle().Width(width).Render(strings.Join(p.Bio, "\n\n"))
	return sectionTitle("Sobre Mim") + "\n" + body
}

func renderTimeline(events []model.TimelineEvent, width int) string {
	var b strings.Builder
	b.WriteString(sectionTitle("Minha Jornada"))
	dateW := 6
	desc := lipgloss.NewStyle().Width(max(10, width-dateW-2)).Foreground(colorCardMetaFg)
	for _, ev := range events {
		b.WriteString("\n")
		date := styleAccent().Width(dateW).Render(ev.Date)
		block := lipgloss.JoinVertical(lipgloss.Left, styleHeading().Render(ev.Title), desc.Render(ev.Description))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, date, "  ", block))
	}
	return b.String()
}

func renderSkills(groups []model.SkillGroup, width int) string {
	var b strings.Builder
	b.WriteString(sectionTitle("Habilidades"))
	desc := styleMuted().Width(max(10, width-4))
	for _, g := range groups {
		b.WriteString("\n" + styleHeading().Render("["+g.Title+"]"))
		for _, s := range g.Skills {
			b.WriteString("\n  " + lipgloss.NewStyle().Foreground(colorSurfaceFg).Render("• "+s.Name))
			if s.Description != "" {
				b.WriteString("\n    " + desc.Render(s.Description))
			}
		}
	}
	return b.String()
}

func renderProjects(pc pageContent, width int) (string, int) {
	var chips []string
	for i, c := range pc.categories {
		chips = append(chips, styleChip(i == pc.filter).Render(string(c)))
	}

	lines := []string{sectionTitle("Projetos"), strings.Join(chips, " "), ""}
	if len(pc.projects) == 0 {
		lines = append(lines, styleMuted().Render("Nenhum projeto nesta categoria."))
		return strings.Join(lines, "\n"), -1
	}

	selLine := -1
	// Card border adds two columns.
	cardW := max(16, width-2)
	for i, p := range pc.projects {
		if i == pc.selected {
			selLine = len(strings.Split(strings.Join(lines, "\n"), "\n"))
		}
		card := styleCard(i == pc.selected, cardW).Render(renderCardBody(p))
		lines = append(lines, card)
	}
	return strings.Join(lines, "\n"), selLine
}

func renderCardBody(p model.Project) string {
	meta := lipgloss.NewStyle().Foreground(colorCardMetaFg)
	parts := []string{
		styleHeading().Render(p.Title),
		meta.Render(string(p.Category)),
		p.Description,
	}
	if len(p.Technologies) > 0 {
		parts = append(parts, styleMuted().Render(strings.Join(p.Technologies, " · ")))
	}
	return strings.Join(parts, "\n")
}

func renderContact(p model.Profile) string {
	var b strings.Builder
	b.WriteString(sectionTitle("Contato"))
	for _, l := range p.Links() {
		fmt.Fprintf(&b, "\n  %-9s %s", l.Label+":", lipgloss.NewStyle().Foreground(colorAccent).Underline(true).Render(l.URL))
	}
	return b.String()
}

func sectionTitle(s string) string {
	return styleAccent().Render("## " + s)
}
