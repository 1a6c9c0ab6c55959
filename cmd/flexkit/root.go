package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/flexkit/internal/logger"
)

type rootFlags struct {
	verbose bool
	log     *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "flexkit",
		Short:         "flexkit resolves responsive layout documents into native styles and web classes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if flags.verbose {
				level = "debug"
			}
			log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			flags.log = log
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newClassesCmd(flags))
	cmd.AddCommand(newSafelistCmd())
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newExploreCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
