package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestConsoleHandlerFormatsComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("remote attempt failed", "component", "reply", "attempt", 2, "model", "models/gemini-2.5-pro")

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " INFO reply: remote attempt failed") {
		t.Fatalf("unexpected console line %q", line)
	}
	if !strings.Contains(line, "attempt=2") || !strings.Contains(line, "model=models/gemini-2.5-pro") {
		t.Fatalf("expected attrs in line %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("attempt", "error", "connection refused by peer")
	if !strings.Contains(buf.String(), `error="connection refused by peer"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestConsoleHandlerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("should be dropped")
	logger.Warn("should be kept")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Fatalf("info line leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "should be kept") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestJSONHandlerUsesNormalizedKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hello", "component", "reply")

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json line: %v", err)
	}
	if decoded["msg"] != "hello" {
		t.Fatalf("expected msg key, got %v", decoded)
	}
	if decoded["level"] != "info" {
		t.Fatalf("expected lowercase level, got %v", decoded)
	}
	if _, ok := decoded["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", decoded)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
