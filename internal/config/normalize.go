package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeGemini()
	c.normalizeReply()
	c.normalizeLogging()
}

func (c *Config) normalizeGemini() {
	c.Gemini.APIKey = strings.TrimSpace(c.Gemini.APIKey)
	if c.Gemini.APIKey == "" {
		if value, ok := os.LookupEnv("GEMINI_API_KEY"); ok {
			c.Gemini.APIKey = strings.TrimSpace(value)
		}
	}
	c.Gemini.BaseURL = strings.TrimSpace(c.Gemini.BaseURL)
	if c.Gemini.BaseURL == "" {
		c.Gemini.BaseURL = defaultGeminiBaseURL
	}
	c.Gemini.Model = strings.TrimSpace(c.Gemini.Model)
	if c.Gemini.Model == "" {
		c.Gemini.Model = defaultGeminiModel
	}
	c.Gemini.FastModel = strings.TrimSpace(c.Gemini.FastModel)
	if c.Gemini.FastModel == "" {
		c.Gemini.FastModel = defaultGeminiFastModel
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		c.Gemini.TimeoutSeconds = defaultGeminiTimeoutSeconds
	}
}

func (c *Config) normalizeReply() {
	if c.Reply.MaxAttempts == 0 {
		c.Reply.MaxAttempts = defaultReplyMaxAttempts
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
