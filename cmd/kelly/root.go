package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	ctx := newCommandContext(&configFlag)
	return buildRootCommand(ctx, &configFlag)
}

func buildRootCommand(ctx *commandContext, configFlag *string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kelly",
		Short:         "Kelly answers questions as short styled poems",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newAskCommand(ctx))
	rootCmd.AddCommand(newChatCommand(ctx))
	rootCmd.AddCommand(newModelsCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
