package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logFormat  string
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "workflowdeck",
		Short:         "Workflowdeck serves and browses a catalog of workflow templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Init(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the terminal browser.
			if len(args) == 0 {
				return runBrowse(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to workflowdeck.yaml (default: discovered in the working directory)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log output format: console or json")

	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newBrowseCmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newIconsCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
