package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kelly/internal/config"
)

func TestLoadDefaultsUseEnvGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Gemini.APIKey != "env-key" {
		t.Fatalf("expected key from env, got %q", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Model != "models/gemini-flash-latest" {
		t.Fatalf("unexpected default model %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.BaseURL != config.Default().Gemini.BaseURL {
		t.Fatalf("unexpected base url %q", cfg.Gemini.BaseURL)
	}
	if cfg.Reply.MaxAttempts != 3 {
		t.Fatalf("unexpected default attempt budget %d", cfg.Reply.MaxAttempts)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
	if err := cfg.RequireAPIKey(); err != nil {
		t.Fatalf("RequireAPIKey with env key: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "kelly.toml")
	content := strings.Join([]string{
		"[gemini]",
		`api_key = "file-key"`,
		`model = "models/gemini-2.5-pro"`,
		"",
		"[reply]",
		"max_attempts = 5",
		"",
		"[logging]",
		`format = "JSON"`,
	}, "\n")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected %s to be used, got %s exists=%v", configPath, resolved, exists)
	}
	if cfg.Gemini.APIKey != "file-key" {
		t.Fatalf("unexpected api key %q", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Model != "models/gemini-2.5-pro" {
		t.Fatalf("unexpected model %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.FastModel != "models/gemini-flash-latest" {
		t.Fatalf("expected fast model default, got %q", cfg.Gemini.FastModel)
	}
	if cfg.Reply.MaxAttempts != 5 {
		t.Fatalf("unexpected attempt budget %d", cfg.Reply.MaxAttempts)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected lowered log format, got %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsAttemptBudgetOutOfRange(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "kelly.toml")
	if err := os.WriteFile(configPath, []byte("[reply]\nmax_attempts = 9\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected validation error for max_attempts = 9")
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	// Register cleanup for the variable godotenv will set, then clear it so
	// the .env value is actually picked up.
	t.Setenv("GEMINI_API_KEY", "")
	os.Unsetenv("GEMINI_API_KEY")
	t.Setenv("HOME", t.TempDir())
	workDir := t.TempDir()
	t.Chdir(workDir)
	if err := os.WriteFile(filepath.Join(workDir, ".env"), []byte("GEMINI_API_KEY=dotenv-key\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Gemini.APIKey != "dotenv-key" {
		t.Fatalf("expected key from .env, got %q", cfg.Gemini.APIKey)
	}
}

func TestRequireAPIKeyMissing(t *testing.T) {
	cfg := config.Default()
	err := cfg.RequireAPIKey()
	if err == nil {
		t.Fatal("expected error without api key")
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Fatalf("expected remediation hint, got %v", err)
	}
}

func TestIsKnownModel(t *testing.T) {
	for _, model := range config.KnownModels {
		if !config.IsKnownModel(model) {
			t.Fatalf("expected %s to be known", model)
		}
	}
	if config.IsKnownModel("models/unknown") {
		t.Fatal("unexpected unknown model acceptance")
	}
}
