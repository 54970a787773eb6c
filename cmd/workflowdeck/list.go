package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
)

type listOptions struct {
	filters    filterFlags
	jsonOutput bool
}

func newListCmd(app *AppContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app, opts)
		},
	}

	opts.filters.register(cmd.Flags())
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, app *AppContext, opts *listOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.list")

	store, _, err := loadCatalog(ctx, app, logger)
	if err != nil {
		return err
	}
	if loadErr := store.LoadError(); loadErr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), catalog.EmptyMessage)
		return newCommandError("list", "loading "+app.Config.Catalog.Source, loadErr, "Check the catalog exists and holds a projects list.")
	}

	store.SetState(opts.filters.state())
	visible := store.Visible()

	if opts.jsonOutput {
		return renderListJSON(cmd, visible)
	}
	return renderListTable(cmd, visible)
}

type listJSONPayload struct {
	Version string         `json:"version"`
	Count   int            `json:"count"`
	Label   string         `json:"label"`
	Items   []catalog.Item `json:"items"`
}

func renderListJSON(cmd *cobra.Command, items []catalog.Item) error {
	payload := listJSONPayload{
		Version: "1.0",
		Count:   len(items),
		Label:   catalog.ResultLabel(len(items)),
		Items:   items,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderListTable(cmd *cobra.Command, items []catalog.Item) error {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "No workflows match your filters.")
		fmt.Fprintln(out, catalog.ResultLabel(0))
		return nil
	}

	titleWidth := titleColumnWidth(out)
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tDIFFICULTY\tUSE CASES\tINTEGRATIONS")
	for _, item := range items {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			item.ID,
			clip(valueOrFallback(item.Title, "(untitled)"), titleWidth),
			valueOrFallback(item.Difficulty, "-"),
			valueOrFallback(strings.Join(item.UseCases, ", "), "-"),
			valueOrFallback(strings.Join(item.Integrations, ", "), "-"),
		)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, catalog.ResultLabel(len(items)))
	return nil
}

// titleColumnWidth caps titles at a third of the terminal. Output that is
// not a terminal is never clipped.
func titleColumnWidth(writer any) int {
	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return max(16, width/3)
}

func clip(s string, width int) string {
	runes := []rune(s)
	if width <= 1 || len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
