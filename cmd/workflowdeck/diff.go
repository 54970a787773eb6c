package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog/source"
	"github.com/alexisbeaulieu97/workflowdeck/pkg/diff"
)

func newDiffCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <before> [after]",
		Short: "Compare two catalogs item by item",
		Long: `Print a unified diff between two catalog documents after normalising their
formatting. Either side may be any supported source URI; after defaults to
the configured catalog.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.diff")

			after := app.Config.Catalog.Source
			if len(args) == 2 {
				after = args[1]
			}

			beforeDoc, err := normalizedCatalog(ctx, app, args[0])
			if err != nil {
				return newCommandError("diff catalogs", "loading "+args[0], err, "Check the source URI and the document format.")
			}
			afterDoc, err := normalizedCatalog(ctx, app, after)
			if err != nil {
				return newCommandError("diff catalogs", "loading "+after, err, "Check the source URI and the document format.")
			}

			out := diff.Unified(beforeDoc, afterDoc, args[0], after)
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Catalogs are identical.")
				return nil
			}
			added, removed := diff.Stats(beforeDoc, afterDoc)
			logger.Debug(ctx, "catalogs differ", "lines_added", added, "lines_removed", removed)
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	return cmd
}

// normalizedCatalog fetches and re-encodes a catalog so formatting
// differences do not show up as changes.
func normalizedCatalog(ctx context.Context, app *AppContext, uri string) ([]byte, error) {
	src, err := source.Open(uri, app.Config.SourceOptions())
	if err != nil {
		return nil, err
	}
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	items, err := catalog.Parse(src.String(), data)
	if err != nil {
		return nil, err
	}
	return catalog.Encode(items)
}
