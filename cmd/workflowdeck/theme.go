package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/workflowdeck/internal/prefs"
)

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [light|dark|toggle]",
		Short: "Show or change the stored theme preference",
		Long: `Without arguments, print the stored theme. With light or dark, store it.
With toggle, flip between the two.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{prefs.ThemeLight, prefs.ThemeDark, "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme")

			store, err := app.OpenPrefs()
			if err != nil {
				return newCommandError("open preferences", app.Config.Prefs.Path, err, "Check prefs.path is writable.")
			}
			defer store.Close()

			var theme string
			switch {
			case len(args) == 0:
				theme, err = store.Theme(ctx)
			case args[0] == "toggle":
				theme, err = store.ToggleTheme(ctx)
			case prefs.ValidTheme(args[0]):
				theme = args[0]
				err = store.SetTheme(ctx, theme)
			default:
				return newCommandError("set theme", "reading the argument", errInvalidTheme(args[0]), "Use light, dark or toggle.")
			}
			if err != nil {
				logger.Error(ctx, "theme command failed", "error", err)
				return newCommandError("update theme", store.Path(), err, "Check prefs.path is writable.")
			}

			if len(args) > 0 {
				logger.Debug(ctx, "theme stored", "theme", theme)
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		},
	}

	return cmd
}
