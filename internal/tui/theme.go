package tui

import (
	"os"
	"strings"

	"portfolio-cli/internal/terminal"
	"portfolio-cli/internal/viewstate"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// Every color is an AdaptiveColor; the light/dark variant is picked by the
// coordinator's theme (applyTheme) instead of background probing.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted     = ac("240", "243")
	colorSurfaceFg = ac("235", "252")
	colorControlBg = ac("252", "235")
	colorInputBg   = ac("254", "234")

	colorAccent   = ac("27", "62") // blue
	colorAccentFg = ac("255", "235")

	colorSelectedBg     = ac("#e9e9e9", "#262626")
	colorSelectedBorder = ac("232", "255")
	colorCardBorder     = ac("250", "243")
	colorCardMetaFg     = ac("238", "250")

	// Terminal mode keeps its green-on-black look in both themes, slightly softened on light.
	colorConsoleFg    = ac("28", "46")
	colorConsoleInfo  = ac("25", "81")
	colorConsoleError = ac("160", "203")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleHeading() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
}

func styleAccent() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
}

func styleChip(active bool) lipgloss.Style {
	st := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return st.Bold(true).Foreground(colorAccentFg).Background(colorAccent)
	}
	return st.Foreground(colorCardMetaFg).Background(colorControlBg)
}

func styleCard(selected bool, width int) lipgloss.Style {
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width)
	if selected {
		return st.BorderForeground(colorSelectedBorder).Background(colorSelectedBg)
	}
	return st.BorderForeground(colorCardBorder)
}

func styleEntry(k terminal.Kind) lipgloss.Style {
	switch k {
	case terminal.KindInput:
		return lipgloss.NewStyle().Bold(true).Foreground(colorConsoleFg)
	case terminal.KindInfo:
		return lipgloss.NewStyle().Foreground(colorConsoleInfo)
	case terminal.KindError:
		return lipgloss.NewStyle().Foreground(colorConsoleError)
	default:
		return lipgloss.NewStyle().Foreground(colorConsoleFg)
	}
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which can disable colors in a
// TUI by accident; here only NO_COLOR is honored and the terminal's capabilities decide.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when they report more than the detector does.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyTheme points every AdaptiveColor at the variant for t.
func applyTheme(t viewstate.Theme) {
	lipgloss.SetHasDarkBackground(t == viewstate.ThemeDark)
}

func themeLabel(t viewstate.Theme) string {
	if t == viewstate.ThemeDark {
		return "escuro"
	}
	return "claro"
}
