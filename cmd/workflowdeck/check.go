package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
)

type checkOptions struct {
	strict bool
}

func newCheckCmd(app *AppContext) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and the catalog document",
		Long: `Load the configuration and the catalog, then report catalog issues such as
duplicate ids or untitled items. With --strict, issues fail the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.check")

			loader, err := app.NewLoader(logger)
			if err != nil {
				return newCommandError("check", "opening the catalog source", err, "Check catalog.source in your configuration.")
			}

			res := loader.Load(ctx)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config:   %s\n", displayPath(app.ConfigPath))
			fmt.Fprintf(out, "catalog:  %s\n", loader.Catalog.String())
			if res.Err != nil {
				fmt.Fprintf(out, "status:   %s\n", catalog.EmptyMessage)
				return newCommandError("check", "loading the catalog", res.Err, "Fix the catalog document and run check again.")
			}

			fmt.Fprintf(out, "items:    %d\n", len(res.Items))
			if loader.Manifest != nil {
				if res.Manifest != nil {
					fmt.Fprintf(out, "manifest: %d icons\n", res.Manifest.Len())
				} else {
					fmt.Fprintln(out, "manifest: unavailable (icons use name-based fallbacks)")
				}
			}

			for _, issue := range res.Issues {
				fmt.Fprintf(out, "issue:    #%d id=%q %s\n", issue.Index, issue.ID, issue.Message)
			}
			if opts.strict && len(res.Issues) > 0 {
				return fmt.Errorf("catalog has %d issue(s)", len(res.Issues))
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when the catalog has issues")

	return cmd
}
