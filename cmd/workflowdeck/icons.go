package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/workflowdeck/internal/icons"
	"github.com/alexisbeaulieu97/workflowdeck/internal/ports"
)

type iconsOptions struct {
	probe      bool
	jsonOutput bool
}

type iconReport struct {
	Name       string            `json:"name"`
	Slug       string            `json:"slug"`
	Candidates []string          `json:"candidates"`
	Source     string            `json:"source"`
	Resolved   string            `json:"resolved,omitempty"`
	Dropped    bool              `json:"dropped,omitempty"`
	Attributes map[string]string `json:"attributes"`
}

func newIconsCmd(app *AppContext) *cobra.Command {
	opts := &iconsOptions{}

	cmd := &cobra.Command{
		Use:   "icons <integration>...",
		Short: "Show how integration names resolve to icon files",
		Long: `Print the slug, candidate file names and first icon source for each
integration name. With --probe, the configured prober walks the fallback chain.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.icons")

			resolver := app.NewResolver()
			loadManifest(ctx, app, resolver, logger)

			var prober icons.Prober
			if opts.probe {
				prober = app.NewProber()
				if prober == nil {
					return newCommandError("probe icons", "choosing a prober", fmt.Errorf("icons.probe is %q", app.Config.Icons.Probe), "Set icons.probe to dir or http.")
				}
			}

			reports := make([]iconReport, 0, len(args))
			for _, name := range args {
				reports = append(reports, describeIcon(ctx, resolver, prober, name))
			}

			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(reports)
			}
			return renderIconsTable(cmd, reports, opts.probe)
		},
	}

	cmd.Flags().BoolVar(&opts.probe, "probe", false, "Probe icon files with the configured prober")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

// loadManifest installs the configured manifest into resolver. A missing or
// malformed manifest leaves the resolver on name-based fallbacks.
func loadManifest(ctx context.Context, app *AppContext, resolver *icons.Resolver, logger ports.Logger) {
	loader, err := app.NewLoader(logger)
	if err != nil || loader.Manifest == nil {
		return
	}
	data, err := loader.Manifest.Fetch(ctx)
	if err != nil {
		logger.Debug(ctx, "icon manifest unavailable", "error", err)
		return
	}
	manifest, err := icons.ParseManifest(data)
	if err != nil {
		logger.Debug(ctx, "icon manifest ignored", "error", err)
		return
	}
	resolver.SetManifest(manifest)
}

func describeIcon(ctx context.Context, resolver *icons.Resolver, prober icons.Prober, name string) iconReport {
	fb := resolver.Fallback(name)
	report := iconReport{
		Name:       name,
		Slug:       icons.Slug(name),
		Candidates: fb.Candidates(),
		Source:     fb.Source(),
		Attributes: fb.Attributes(),
	}
	if prober != nil {
		if src, ok := icons.Probe(ctx, fb, prober); ok {
			report.Resolved = src
		} else {
			report.Dropped = true
		}
	}
	return report
}

func renderIconsTable(cmd *cobra.Command, reports []iconReport, probed bool) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	header := "NAME\tSLUG\tCANDIDATES\tSOURCE"
	if probed {
		header += "\tRESOLVED"
	}
	fmt.Fprintln(writer, header)

	for _, r := range reports {
		line := fmt.Sprintf("%s\t%s\t%s\t%s", r.Name, valueOrFallback(r.Slug, "-"), strings.Join(r.Candidates, ","), r.Source)
		if probed {
			resolved := r.Resolved
			if r.Dropped {
				resolved = "(dropped)"
			}
			line += "\t" + resolved
		}
		fmt.Fprintln(writer, line)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	if len(reports) == 1 {
		keys := make([]string, 0, len(reports[0].Attributes))
		for k := range reports[0].Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%q\n", k, reports[0].Attributes[k])
		}
	}
	return nil
}
