package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kelly/internal/chat"
	"kelly/internal/config"
)

func newAskCommand(ctx *commandContext) *cobra.Command {
	var modelFlag string
	var attemptsFlag int

	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Ask a single question and print the poem",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				return fmt.Errorf("ask: question must not be empty")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.RequireAPIKey(); err != nil {
				return err
			}

			model := cfg.Gemini.Model
			if flagValue := strings.TrimSpace(modelFlag); flagValue != "" {
				if !config.IsKnownModel(flagValue) {
					return fmt.Errorf("ask: unknown model %q (see `kelly models`)", flagValue)
				}
				model = flagValue
			}

			attempts := cfg.Reply.MaxAttempts
			if cmd.Flags().Changed("attempts") {
				if attemptsFlag < config.MinAttempts || attemptsFlag > config.MaxAttempts {
					return fmt.Errorf("ask: attempts must be between %d and %d", config.MinAttempts, config.MaxAttempts)
				}
				attempts = attemptsFlag
			}

			logger, err := ctx.logger(cfg)
			if err != nil {
				return err
			}

			rep := ctx.newReplier(cfg, logger)
			result := rep.Reply(cmd.Context(), question, model, attempts)
			fmt.Fprintln(cmd.OutOrStdout(), chat.RenderResult(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", "Model to prefer for this question")
	cmd.Flags().IntVarP(&attemptsFlag, "attempts", "a", 0, "Attempt budget before the local fallback")

	return cmd
}
