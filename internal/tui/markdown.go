package tui

import (
	"strconv"
	"strings"
	"sync"

	"portfolio-cli/internal/viewstate"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by theme + wrap width. WithAutoStyle is avoided: it queries the
	// terminal and can block.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown renders the project narrative for the detail overlay. On any renderer
// failure the raw text is returned.
func renderMarkdown(md string, width int, theme viewstate.Theme) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	key := string(theme) + ":" + strconv.Itoa(width)
	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		cfg := markdownStyleConfig(theme)
		zero := uint(0)
		cfg.Document.Margin = &zero
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(cfg),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func markdownStyleConfig(theme viewstate.Theme) ansi.StyleConfig {
	cfg := styles.LightStyleConfig
	if theme == viewstate.ThemeDark {
		cfg = styles.DarkStyleConfig
	}
	applyMarkdownPalette(&cfg, theme)
	return cfg
}

// applyMarkdownPalette keeps glamour's output in the TUI palette: headings and body in
// the surface color, links in the accent color.
func applyMarkdownPalette(cfg *ansi.StyleConfig, theme viewstate.Theme) {
	text := mdColor(colorSurfaceFg, theme)
	cfg.Text.Color = text
	cfg.Heading.Color = text
	cfg.H1.Color = text
	cfg.H2.Color = text
	cfg.H3.Color = text

	link := mdColor(colorAccent, theme)
	cfg.Link.Color = link
	cfg.Link.Underline = mdBoolPtr(true)
	cfg.LinkText.Color = link

	cfg.Code.Color = text
	cfg.Strong.Color = nil
	cfg.Emph.Color = nil
	cfg.BlockQuote.Faint = mdBoolPtr(false)
}

func mdColor(c lipgloss.AdaptiveColor, theme viewstate.Theme) *string {
	if theme == viewstate.ThemeDark {
		return mdStrPtr(c.Dark)
	}
	return mdStrPtr(c.Light)
}

func mdStrPtr(s string) *string { return &s }

func mdBoolPtr(b bool) *bool { return &b }
