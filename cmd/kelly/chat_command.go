package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"kelly/internal/config"
	"kelly/internal/logging"
	"kelly/internal/tui"
)

func newChatCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.RequireAPIKey(); err != nil {
				return err
			}

			// The alternate screen owns the terminal, so request logging is
			// silenced for the duration of the session.
			rep := ctx.newReplier(cfg, logging.NewNop())

			model := tui.New(tui.Options{
				Replier:     rep,
				Model:       cfg.Gemini.Model,
				Models:      config.KnownModels,
				MaxAttempts: cfg.Reply.MaxAttempts,
			})

			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("chat: %w", err)
			}
			return nil
		},
	}
}
