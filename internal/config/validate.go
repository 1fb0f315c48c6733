package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. The API key is checked
// separately (RequireAPIKey) so key-less utility commands still run.
func (c *Config) Validate() error {
	if err := c.validateGemini(); err != nil {
		return err
	}
	if err := c.validateReply(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateGemini() error {
	if c.Gemini.Model == "" {
		return errors.New("gemini.model must be set")
	}
	if c.Gemini.FastModel == "" {
		return errors.New("gemini.fast_model must be set")
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		return errors.New("gemini.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateReply() error {
	if c.Reply.MaxAttempts < MinAttempts || c.Reply.MaxAttempts > MaxAttempts {
		return fmt.Errorf("reply.max_attempts must be between %d and %d", MinAttempts, MaxAttempts)
	}
	return nil
}
