package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/flexkit/internal/style"
)

func newSafelistCmd() *cobra.Command {
	var (
		spaceSeparated bool
		shadowCSS      bool
	)

	cmd := &cobra.Command{
		Use:   "safelist",
		Short: "Print every class the web resolver can emit",
		Long: `Safelist prints the closed-set class vocabulary, including every
breakpoint-scoped variant, so a utility-class stylesheet can be generated
for it ahead of time. Arbitrary flex factors are not listed.

With --shadow-css it prints the box-shadow rules for the shadow classes
instead, each scoped variant wrapped in its breakpoint media query.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shadowCSS {
				rules, err := style.ShadowRules()
				if err != nil {
					return newCommandError("list shadow rules", "rendering CSS", err, "Report this as a bug.")
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(rules, "\n"))
				return err
			}

			classes := style.Vocabulary()
			if spaceSeparated {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(classes, " "))
				return err
			}
			for _, class := range classes {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), class); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&spaceSeparated, "inline", false, "Print the classes on a single line")
	cmd.Flags().BoolVar(&shadowCSS, "shadow-css", false, "Print CSS rules for the shadow classes")

	return cmd
}
