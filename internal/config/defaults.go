package config

const (
	defaultGeminiBaseURL        = "https://generativelanguage.googleapis.com"
	defaultGeminiModel          = "models/gemini-flash-latest"
	defaultGeminiFastModel      = "models/gemini-flash-latest"
	defaultGeminiTimeoutSeconds = 30
	defaultReplyMaxAttempts     = 3
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"

	// MinAttempts and MaxAttempts bound the recognized attempt budget.
	MinAttempts = 1
	MaxAttempts = 6
)

// KnownModels lists the model identifiers offered by the presentation layer.
var KnownModels = []string{
	"models/gemini-flash-latest",
	"models/gemini-2.5-pro",
	"models/gemini-2.5-flash",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Gemini: Gemini{
			BaseURL:        defaultGeminiBaseURL,
			Model:          defaultGeminiModel,
			FastModel:      defaultGeminiFastModel,
			TimeoutSeconds: defaultGeminiTimeoutSeconds,
		},
		Reply: Reply{
			MaxAttempts: defaultReplyMaxAttempts,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// IsKnownModel reports whether the identifier is in the offered model set.
func IsKnownModel(model string) bool {
	for _, known := range KnownModels {
		if known == model {
			return true
		}
	}
	return false
}
