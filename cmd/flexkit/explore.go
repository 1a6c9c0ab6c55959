package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/flexkit/internal/logger"
	"github.com/alexisbeaulieu97/flexkit/internal/tui/explore"
)

type exploreOptions struct {
	documentOptions
	logFile string
	noWatch bool
}

func newExploreCmd(root *rootFlags) *cobra.Command {
	opts := &exploreOptions{}

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Launch the interactive layout explorer",
		Long: `Launch a terminal UI that re-resolves the layout document as you resize
the simulated viewport or switch platforms. The document is reloaded when it
changes on disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, opts, root)
		},
	}

	opts.addFlags(cmd, true)
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file while the explorer runs")
	cmd.Flags().BoolVar(&opts.noWatch, "no-watch", false, "Do not reload the document when it changes")

	return cmd
}

func runExplore(cmd *cobra.Command, opts *exploreOptions, root *rootFlags) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("explore", "starting explorer",
			errors.New("standard output is not a terminal"),
			"Run 'flexkit resolve' for non-interactive output.")
	}

	loaded, err := loadDocument("explore", opts.documentOptions, root)
	if err != nil {
		return err
	}
	doc := loaded.doc
	if opts.platform != "" {
		doc.Settings.Platform = loaded.host.OS.String()
	}
	doc.Settings.Width = loaded.host.Width

	// The explorer owns the screen, so logs go to a file or nowhere.
	log := logger.Nop()
	if opts.logFile != "" {
		file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return newCommandError("explore", "opening log file", err, "Choose a writable --log-file path.")
		}
		defer file.Close()

		level := "info"
		if root.verbose {
			level = "debug"
		}
		log, err = logger.New(logger.Options{Level: level, Writer: file, Component: "explore"})
		if err != nil {
			return newCommandError("explore", "creating logger", err, "Check the --verbose flag.")
		}
	}

	var watcher *explore.Watcher
	if !opts.noWatch {
		watcher, err = explore.NewWatcher(opts.path)
		if err != nil {
			log.Warn("file watching disabled: " + err.Error())
		}
	}
	defer watcher.Close()

	model, err := explore.NewModel(explore.Options{
		Path:     opts.path,
		Document: doc,
		Watcher:  watcher,
		Logger:   log.WithDocument(opts.path),
	})
	if err != nil {
		return newCommandError("explore", "building layout tree", err, documentSuggestion(err))
	}

	log.Info("explorer started")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return newCommandError("explore", "running explorer", err, "Try a larger terminal window.")
	}
	log.Info("explorer closed")

	return nil
}
