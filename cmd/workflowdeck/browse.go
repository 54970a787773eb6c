package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/logger"
	"github.com/alexisbeaulieu97/workflowdeck/internal/ports"
	"github.com/alexisbeaulieu97/workflowdeck/internal/tui/browser"
)

var errNotTerminal = errors.New("stdout is not a terminal")

type browseOptions struct {
	logFile string
}

func newBrowseCmd(app *AppContext) *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in the terminal",
		Long:  `Launch the interactive terminal browser with search, filters and item details.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowseWith(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file while the browser owns the screen")

	return cmd
}

func runBrowse(cmd *cobra.Command, app *AppContext) error {
	return runBrowseWith(cmd, app, &browseOptions{})
}

func runBrowseWith(cmd *cobra.Command, app *AppContext, opts *browseOptions) error {
	ctx, cmdLogger := app.CommandContext(cmd, "command.browse")

	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("browse", "starting the terminal browser", errNotTerminal, "Use 'workflowdeck list' or 'workflowdeck render' for non-interactive output.")
	}

	// The browser owns the terminal; logs only go to an explicit file.
	var log ports.Logger = logger.NewNoOp()
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		fileLogger, err := logger.New(logger.Options{Level: app.Config.Log.Level, Writer: f, Component: "browser"})
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		log = fileLogger
	}

	loader, err := app.NewLoader(log)
	if err != nil {
		return newCommandError("browse", "opening the catalog source", err, "Check catalog.source in your configuration.")
	}

	prefStore, err := app.OpenPrefs()
	if err != nil {
		return newCommandError("browse", "opening the preference store", err, "Check prefs.path is writable.")
	}
	defer prefStore.Close()

	theme, err := prefStore.Theme(ctx)
	if err != nil {
		log.Warn(ctx, "theme preference unreadable", "error", err)
	}

	m := browser.NewModel(browser.Options{
		Title:         app.Config.Title,
		Store:         catalog.NewStore(nil),
		Resolver:      app.NewResolver(),
		Loader:        loader,
		Prefs:         prefStore,
		Theme:         theme,
		Slides:        app.Config.UI.Slides,
		Notifications: app.Config.UI.Notifications,
		Context:       ctx,
	})

	cmdLogger.Debug(ctx, "launching browser")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		cmdLogger.Error(ctx, "browser execution failed", "error", err)
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
