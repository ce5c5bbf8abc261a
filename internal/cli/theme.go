package cli

import (
	"portfolio-cli/internal/viewstate"

	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the stored theme preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := newCoordinator(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeTheme(cmd, app, coord.Theme())
		},
	}
	cmd.AddCommand(newThemeSetCmd(app))
	cmd.AddCommand(newThemeToggleCmd(app))
	return cmd
}

func newThemeSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Store the theme preference",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(viewstate.ThemeLight), string(viewstate.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := viewstate.ParseTheme(args[0])
			if !ok {
				return writeErr(cmd, invalidValueError{what: "theme", value: args[0], want: "light|dark"})
			}
			coord, err := newCoordinator(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := coord.SetTheme(t); err != nil {
				return writeErr(cmd, err)
			}
			return writeTheme(cmd, app, coord.Theme())
		},
	}
}

func newThemeToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Flip the stored theme between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := newCoordinator(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := coord.ToggleTheme(); err != nil {
				return writeErr(cmd, err)
			}
			return writeTheme(cmd, app, coord.Theme())
		},
	}
}

func writeTheme(cmd *cobra.Command, app *App, t viewstate.Theme) error {
	return writeOut(cmd, app, result{
		Data: map[string]any{"theme": t},
		text: func() string { return string(t) },
	})
}
