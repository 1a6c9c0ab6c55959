package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/flexkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/flexkit/internal/layout"
)

type resolveOptions struct {
	documentOptions
	jsonOutput bool
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a layout document into styles or class names",
		Long: `Resolve measures the viewport once, selects its breakpoint, and prints the
native style or web class name of every node in the layout document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts, root)
		},
	}

	opts.addFlags(cmd, true)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the resolved tree as JSON")

	return cmd
}

type resolveJSONPayload struct {
	Name       string              `json:"name"`
	Platform   string              `json:"platform"`
	Width      float64             `json:"width"`
	Breakpoint string              `json:"breakpoint,omitempty"`
	Root       layout.RenderedNode `json:"root"`
}

func runResolve(cmd *cobra.Command, opts *resolveOptions, root *rootFlags) error {
	loaded, err := loadDocument("resolve", opts.documentOptions, root)
	if err != nil {
		return err
	}

	rendered, err := loaded.render("resolve", root)
	if err != nil {
		return err
	}

	// Web output is scoped to every breakpoint, so none is selected.
	selected := ""
	if loaded.host.OS.IsNative() {
		selected = breakpoint.Select(loaded.host.Width).String()
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(resolveJSONPayload{
			Name:       loaded.doc.Name,
			Platform:   loaded.host.OS.String(),
			Width:      loaded.host.Width,
			Breakpoint: selected,
			Root:       rendered,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Document:   %s\n", loaded.doc.Name)
	fmt.Fprintf(out, "Platform:   %s\n", loaded.host.OS)
	fmt.Fprintf(out, "Width:      %gpx\n", loaded.host.Width)
	if selected != "" {
		fmt.Fprintf(out, "Breakpoint: %s\n", selected)
	}
	fmt.Fprintln(out)
	return writeTree(out, rendered)
}

// writeTree prints one block per node, indented by depth.
func writeTree(out io.Writer, root layout.RenderedNode) error {
	return root.Walk(func(node layout.RenderedNode) error {
		indent := strings.Repeat("  ", strings.Count(node.Path, "."))

		fmt.Fprintf(out, "%s%s (%s)\n", indent, node.Path, node.Kind)
		if node.Content != "" {
			fmt.Fprintf(out, "%s  text: %q\n", indent, node.Content)
		}
		if node.Rendered.ClassName != "" {
			fmt.Fprintf(out, "%s  className: %s\n", indent, node.Rendered.ClassName)
		}
		for _, key := range slices.Sorted(maps.Keys(node.Rendered.Style)) {
			fmt.Fprintf(out, "%s  %s: %v\n", indent, key, node.Rendered.Style[key])
		}
		return nil
	})
}
