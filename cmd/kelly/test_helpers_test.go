package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"kelly/internal/config"
	"kelly/internal/reply"
)

type stubReplier struct {
	result   reply.Result
	question string
	model    string
	attempts int
	calls    int
}

func (s *stubReplier) Reply(_ context.Context, prompt, model string, maxAttempts int) reply.Result {
	s.calls++
	s.question = prompt
	s.model = model
	s.attempts = maxAttempts
	return s.result
}

// runCLI executes the root command with a stub replier and a config that
// carries an API key, so no network is involved.
func runCLI(t *testing.T, stub *stubReplier, args []string) (string, error) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var configFlag string
	ctx := newCommandContext(&configFlag)
	if stub != nil {
		ctx.newReplier = func(*config.Config, *slog.Logger) replier { return stub }
	}

	cmd := buildRootCommand(ctx, &configFlag)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func captureOutput(cmd *cobra.Command, args []string) string {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	_ = cmd.Execute()
	return out.String()
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
