package cli

import (
	"bufio"
	"fmt"
	"strings"

	"portfolio-cli/internal/catalog"
	"portfolio-cli/internal/sched"
	"portfolio-cli/internal/terminal"
	"portfolio-cli/internal/viewstate"

	"github.com/spf13/cobra"
)

func newTermCmd(app *App) *cobra.Command {
	var showState bool
	var boot bool

	cmd := &cobra.Command{
		Use:   "term [line...]",
		Short: "Run KlayverOS command lines without the TUI",
		Long: strings.TrimSpace(`
Runs each argument (or each stdin line when no arguments are given) through the
KlayverOS interpreter, then lets any deferred work (e.g. the gui switch) fire and
prints the resulting scrollback.
`),
		Example: strings.TrimSpace(`
  portfolio term help
  portfolio term "exec dashboard-redes" --state
  printf 'ls\nskills\n' | portfolio term --format text
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				read, err := readLines(cmd)
				if err != nil {
					return writeErr(cmd, err)
				}
				lines = read
			}

			coord, err := newCoordinator(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			coord.SwitchToTerminal()

			q := sched.NewQueue()
			in := terminal.New(app.catalog, coord, q,
				terminal.WithGUIDelay(app.GUIDelay),
				terminal.WithProfile(catalog.Profile()),
				terminal.WithSkillGroups(catalog.SkillGroups()),
			)
			if boot {
				in.Boot()
			}
			for _, ln := range lines {
				in.Submit(ln)
			}
			fired := q.Flush()

			entries := in.Scrollback()
			if entries == nil {
				entries = []terminal.Entry{}
			}
			r := result{
				Data: entries,
				text: func() string { return transcriptText(entries) },
			}
			if showState {
				st := coord.Snapshot()
				r.Meta = map[string]any{"state": st, "deferredRun": fired}
				inner := r.text
				r.text = func() string { return inner() + "\n\n" + stateText(st) }
			}
			return writeOut(cmd, app, r)
		},
	}

	cmd.Flags().BoolVar(&showState, "state", false, "Include the final view state")
	cmd.Flags().BoolVar(&boot, "boot", false, "Start with the welcome banner, as the TUI does")
	return cmd
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

func transcriptText(entries []terminal.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		if e.Kind == terminal.KindInput {
			b.WriteString(terminal.Prompt + " " + e.Text + "\n")
			continue
		}
		b.WriteString(e.Text + "\n")
	}
	return b.String()
}

func stateText(st viewstate.State) string {
	open := "-"
	if st.OpenProject != nil {
		open = st.OpenProject.ID
	}
	return fmt.Sprintf("mode: %s\nproject: %s\ntheme: %s", st.Mode, open, st.Theme)
}
