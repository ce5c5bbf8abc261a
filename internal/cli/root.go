package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"portfolio-cli/internal/catalog"
	"portfolio-cli/internal/config"
	"portfolio-cli/internal/format"
	"portfolio-cli/internal/store"
	"portfolio-cli/internal/tui"
	"portfolio-cli/internal/viewstate"

	"github.com/spf13/cobra"
)

type App struct {
	Dir          string
	PrefsBackend string
	PrettyJSON   bool
	Format       string
	Ephemeral    bool
	GUIDelay     time.Duration
	DebugLog     string
	Mode         string

	catalog *catalog.Catalog
	prefs   store.Preferences
	logFile *os.File
}

func NewRootCmd() *cobra.Command {
	cfg, cfgErr := config.Load()
	app := &App{catalog: catalog.Default()}

	cmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Klayver's portfolio: graphical page + KlayverOS terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive portfolio
  portfolio

  # Start straight in KlayverOS
  portfolio --mode terminal

  # Scriptable commands
  portfolio projects --category Full-Stack
  portfolio term "ls" "exec dashboard-redes"

  # Direct project lookup (shortcut for: portfolio projects show <project-id>)
  portfolio dashboard-redes
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return writeErr(cmd, cfgErr)
		}
		// The TUI routes the logger itself.
		if cmd.Root() == cmd {
			return nil
		}
		return setupLogging(cmd, app)
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.logFile != nil {
			_ = app.logFile.Close()
			app.logFile = nil
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", cfg.Dir, "Preferences directory (default: $PORTFOLIO_DIR or ~/.portfolio)")
	cmd.PersistentFlags().StringVar(&app.PrefsBackend, "prefs-backend", cfg.PrefsBackend, "Preferences backend (auto|json|sqlite)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", cfg.Format, "Output format (json|edn|text)")
	cmd.PersistentFlags().BoolVar(&app.Ephemeral, "ephemeral", false, "Keep preferences in memory only")
	cmd.PersistentFlags().DurationVar(&app.GUIDelay, "gui-delay", cfg.GUIDelay, "Delay before the gui command returns to graphical mode")
	cmd.Flags().StringVar(&app.Mode, "mode", cfg.Mode, "Start mode (graphical|terminal)")
	app.DebugLog = cfg.DebugLog

	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newTermCmd(app))
	cmd.AddCommand(newThemeCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	mode, err := viewstate.ParseMode(app.Mode)
	if err != nil {
		return writeErr(cmd, err)
	}
	coord, err := newCoordinator(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	return tui.Run(tui.Options{
		Catalog:     app.catalog,
		Coordinator: coord,
		StartMode:   mode,
		GUIDelay:    app.GUIDelay,
		DebugLog:    app.DebugLog,
	})
}

// setupLogging sends the standard logger to PORTFOLIO_DEBUG_LOG, or drops it so
// subcommand output stays machine-readable.
func setupLogging(cmd *cobra.Command, app *App) error {
	if app.DebugLog == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(app.DebugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return writeErr(cmd, fmt.Errorf("open debug log: %w", err))
	}
	app.logFile = f
	log.SetOutput(f)
	return nil
}

// openPrefs resolves the preference store once per invocation.
func openPrefs(app *App) (store.Preferences, error) {
	if app.prefs != nil {
		return app.prefs, nil
	}
	if app.Ephemeral {
		app.prefs = store.NewMemory()
		return app.prefs, nil
	}

	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("resolve prefs dir: %w", err)
		}
		dir = d
	}
	backend, err := store.ParseBackend(app.PrefsBackend)
	if err != nil {
		return nil, err
	}
	p, err := store.Open(dir, backend)
	if err != nil {
		return nil, err
	}
	app.prefs = p
	return p, nil
}

func newCoordinator(app *App) (*viewstate.Coordinator, error) {
	prefs, err := openPrefs(app)
	if err != nil {
		return nil, err
	}
	return viewstate.New(app.catalog, prefs), nil
}

// result is the output envelope shared by every subcommand.
type result struct {
	Data  any            `json:"data"`
	Meta  map[string]any `json:"meta,omitempty"`
	Hints []string       `json:"_hints,omitempty"`

	text func() string
}

func (r result) Text() string {
	if r.text != nil {
		return r.text()
	}
	b, err := json.MarshalIndent(r.Data, "", "  ")
	if err != nil {
		return fmt.Sprint(r.Data)
	}
	return string(b)
}

func writeOut(cmd *cobra.Command, app *App, r result) error {
	return format.Write(cmd.OutOrStdout(), r, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
