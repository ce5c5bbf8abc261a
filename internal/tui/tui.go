package tui

import (
	"fmt"
	"io"
	"log"
	"time"

	"portfolio-cli/internal/catalog"
	"portfolio-cli/internal/viewstate"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Catalog     *catalog.Catalog
	Coordinator *viewstate.Coordinator
	StartMode   viewstate.Mode
	// GUIDelay is passed to the interpreter as is, so 0 switches on the next tick
	// and a negative value keeps terminal.DefaultGUIDelay.
	GUIDelay time.Duration
	// DebugLog receives the standard logger while the alt screen is active; empty
	// discards it.
	DebugLog string
}

func Run(opts Options) error {
	if opts.DebugLog != "" {
		f, err := tea.LogToFile(opts.DebugLog, "")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	applyColorProfilePreference()
	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
