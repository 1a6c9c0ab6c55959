package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/flexkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/flexkit/internal/layout"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
	"github.com/alexisbeaulieu97/flexkit/pkg/diff"
)

type diffOptions struct {
	documentOptions
	toWidth    float64
	toPlatform string
}

func newDiffCmd(root *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare a layout resolved in two environments",
		Long: `Diff resolves the document twice and prints a unified diff of the results.
The first environment comes from the document settings, --width and
--platform; the second overrides them with --to-width and --to-platform.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, opts, root)
		},
	}

	opts.addFlags(cmd, true)
	cmd.Flags().Float64Var(&opts.toWidth, "to-width", -1, "Viewport width of the second environment")
	cmd.Flags().StringVar(&opts.toPlatform, "to-platform", "", "Platform of the second environment")

	return cmd
}

func runDiff(cmd *cobra.Command, opts *diffOptions, root *rootFlags) error {
	loaded, err := loadDocument("diff", opts.documentOptions, root)
	if err != nil {
		return err
	}

	target := loaded
	if opts.toWidth >= 0 {
		target.host.Width = opts.toWidth
	}
	if opts.toPlatform != "" {
		platform, err := tokens.ParsePlatform(opts.toPlatform)
		if err != nil {
			return newCommandError("diff", "reading --to-platform", err, "Use one of ios, android or web.")
		}
		target.host.OS = platform
	}

	before, err := renderText(loaded, root)
	if err != nil {
		return err
	}
	after, err := renderText(target, root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	unified := diff.Unified(before, after, environmentLabel(loaded.host), environmentLabel(target.host))
	if unified == "" {
		fmt.Fprintln(out, "No differences.")
		return nil
	}

	added, removed := diff.Stat(unified)
	fmt.Fprint(out, unified)
	fmt.Fprintf(out, "\n%d added, %d removed\n", added, removed)
	return nil
}

func renderText(d loadedDocument, root *rootFlags) (string, error) {
	rendered, err := d.render("diff", root)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := writeTree(&buf, rendered); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func environmentLabel(host layout.StaticHost) string {
	if !host.OS.IsNative() {
		return fmt.Sprintf("%s@%gpx", host.OS, host.Width)
	}
	return fmt.Sprintf("%s@%gpx (%s)", host.OS, host.Width, breakpoint.Select(host.Width))
}
