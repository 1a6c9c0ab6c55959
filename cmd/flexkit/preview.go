package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/flexkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/flexkit/internal/ui/components"
)

var previewHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &documentOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw the resolved native layout in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, opts, root)
		},
	}

	opts.addFlags(cmd, true)

	return cmd
}

func runPreview(cmd *cobra.Command, opts *documentOptions, root *rootFlags) error {
	loaded, err := loadDocument("preview", *opts, root)
	if err != nil {
		return err
	}
	if !loaded.host.OS.IsNative() {
		return newCommandError("preview", "drawing layout",
			errors.New("web renders produce class names, not styles"),
			"Use --platform ios or --platform android, or run 'flexkit classes'.")
	}

	rendered, err := loaded.render("preview", root)
	if err != nil {
		return err
	}

	view, err := components.Build(rendered)
	if err != nil {
		return newCommandError("preview", "drawing layout", err, "Report the node named in the error.")
	}

	out := cmd.OutOrStdout()
	bp := breakpoint.Select(loaded.host.Width)
	fmt.Fprintln(out, previewHeaderStyle.Render(fmt.Sprintf("%s · %s · %gpx · %s", loaded.doc.Name, loaded.host.OS, loaded.host.Width, bp)))

	ctx := components.DefaultContext().WithMaxWidth(terminalWidth(out))
	fmt.Fprintln(out, view.ViewWithContext(ctx))
	return nil
}
