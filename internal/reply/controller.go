package reply

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"kelly/internal/poet"
	"kelly/internal/services"
	"kelly/internal/services/gemini"
)

// Generation parameters are fixed for every attempt: moderate randomness,
// a hard output cap, and the two most over-triggering safety categories
// relaxed while all others stay at provider defaults.
const (
	temperature     = 0.45
	topP            = 0.9
	maxOutputTokens = 400

	transportBackoff = 600 * time.Millisecond
	safetyBackoff    = 600 * time.Millisecond
	emptyBackoff     = 400 * time.Millisecond
)

// Source tags where a reply came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Result is the outcome of one reply request. Immutable once produced.
type Result struct {
	Text   string
	Source Source
}

// Generator issues one remote generation call. *gemini.Client satisfies it;
// tests substitute a scripted fake.
type Generator interface {
	GenerateContent(ctx context.Context, model string, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

// Controller orchestrates the bounded attempt sequence over models and
// paraphrases, falling back to a local poem when nothing usable comes back.
type Controller struct {
	gen       Generator
	logger    *slog.Logger
	sleeper   func(time.Duration)
	fastModel string
}

// Option customizes the controller.
type Option func(*Controller)

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSleeper overrides how backoff sleeps are performed (useful for tests).
func WithSleeper(sleeper func(time.Duration)) Option {
	return func(c *Controller) {
		c.sleeper = sleeper
	}
}

// WithFastModel overrides the escalation model appended to attempt plans.
func WithFastModel(model string) Option {
	return func(c *Controller) {
		if model = strings.TrimSpace(model); model != "" {
			c.fastModel = model
		}
	}
}

// NewController constructs a reply controller around the supplied generator.
func NewController(gen Generator, opts ...Option) *Controller {
	c := &Controller{
		gen:       gen,
		logger:    slog.Default(),
		fastModel: FastModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reply runs at most maxAttempts remote attempts for the prompt and returns
// either the first extracted remote text or the local fallback poem. It
// never returns an error: total exhaustion resolves deterministically to
// the fallback.
func (c *Controller) Reply(ctx context.Context, prompt, model string, maxAttempts int) Result {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	ctx, requestID := services.EnsureRequestID(ctx)
	logger := c.logger.With("component", "reply", "request_id", requestID)
	plan := buildPlan(model, c.fastModel, maxAttempts)

	for i, attempt := range plan {
		if ctx.Err() != nil {
			break
		}
		resp, err := c.gen.GenerateContent(ctx, attempt.Model, composeRequest(attempt.Paraphrase(prompt)))
		if err != nil {
			logger.Warn("remote attempt failed",
				"attempt", i+1,
				"model", attempt.Model,
				"error", err)
			c.sleep(ctx, transportBackoff)
			continue
		}
		if text, ok := gemini.ExtractText(resp); ok {
			logger.Debug("remote attempt succeeded",
				"attempt", i+1,
				"model", attempt.Model)
			return Result{Text: strings.TrimSpace(text), Source: SourceRemote}
		}
		reason := gemini.FirstFinishReason(resp)
		logger.Warn("remote attempt returned no text",
			"attempt", i+1,
			"model", attempt.Model,
			"finish_reason", string(reason))
		if reason == gemini.FinishReasonSafety {
			c.sleep(ctx, safetyBackoff)
		} else {
			c.sleep(ctx, emptyBackoff)
		}
	}

	logger.Info("all remote attempts exhausted, using local fallback",
		"budget", maxAttempts)
	return Result{Text: poet.FallbackPoem(prompt), Source: SourceFallback}
}

func composeRequest(question string) gemini.GenerateRequest {
	return gemini.GenerateRequest{
		Contents: []gemini.Content{{
			Role:  "user",
			Parts: []gemini.Part{{Text: poet.ComposePrompt(question)}},
		}},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     temperature,
			TopP:            topP,
			MaxOutputTokens: maxOutputTokens,
		},
		SafetySettings: []gemini.SafetySetting{
			{Category: gemini.HarmCategoryDangerousContent, Threshold: gemini.HarmBlockNone},
			{Category: gemini.HarmCategoryHateSpeech, Threshold: gemini.HarmBlockNone},
		},
	}
}

func (c *Controller) sleep(ctx context.Context, delay time.Duration) {
	if delay <= 0 {
		return
	}
	if c.sleeper != nil {
		c.sleeper(delay)
		return
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
