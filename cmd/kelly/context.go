package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"kelly/internal/config"
	"kelly/internal/logging"
	"kelly/internal/reply"
	"kelly/internal/services/gemini"
)

// replier is the slice of the reply controller the commands need. Tests
// substitute a stub here instead of dialing the hosted API.
type replier interface {
	Reply(ctx context.Context, prompt, model string, maxAttempts int) reply.Result
}

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	// newReplier is swapped out by tests.
	newReplier func(cfg *config.Config, logger *slog.Logger) replier
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		newReplier: buildReplier,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(cfg *config.Config) (*slog.Logger, error) {
	return logging.NewFromConfig(cfg, nil)
}

func buildReplier(cfg *config.Config, logger *slog.Logger) replier {
	client := gemini.NewClient(gemini.Config{
		APIKey:         cfg.Gemini.APIKey,
		BaseURL:        cfg.Gemini.BaseURL,
		TimeoutSeconds: cfg.Gemini.TimeoutSeconds,
	})
	return reply.NewController(client,
		reply.WithLogger(logger),
		reply.WithFastModel(cfg.Gemini.FastModel))
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
