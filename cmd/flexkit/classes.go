package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/flexkit/internal/layout"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
)

func newClassesCmd(root *rootFlags) *cobra.Command {
	opts := &documentOptions{}

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Print the web class name of every node",
		Long: `Classes resolves the document for the web platform. Responsive values become
breakpoint-scoped classes, so the output does not depend on a viewport width.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses(cmd, opts, root)
		},
	}

	opts.addFlags(cmd, false)

	return cmd
}

func runClasses(cmd *cobra.Command, opts *documentOptions, root *rootFlags) error {
	loaded, err := loadDocument("list classes", *opts, root)
	if err != nil {
		return err
	}
	loaded.host.OS = tokens.PlatformWeb

	rendered, err := loaded.render("list classes", root)
	if err != nil {
		return err
	}

	return rendered.Walk(func(node layout.RenderedNode) error {
		className := node.Rendered.ClassName
		if className == "" {
			className = "(none)"
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", node.Path, className)
		return err
	})
}
