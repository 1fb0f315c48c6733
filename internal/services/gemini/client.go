package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://generativelanguage.googleapis.com"
	apiVersion         = "v1beta"
	defaultHTTPTimeout = 30 * time.Second
)

// Config captures the runtime settings required to talk to the Gemini API.
type Config struct {
	APIKey         string
	BaseURL        string
	TimeoutSeconds int
}

// Client wraps the Gemini generateContent REST API. It performs exactly one
// HTTP request per call; attempt budgets and backoff live with the caller.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the default API base (useful for tests/mocks).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		base = strings.TrimSpace(base)
		if base != "" {
			c.cfg.BaseURL = strings.TrimRight(base, "/")
		}
	}
}

// NewClient constructs a Gemini API client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			APIKey:         strings.TrimSpace(cfg.APIKey),
			BaseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
			TimeoutSeconds: cfg.TimeoutSeconds,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = defaultBaseURL
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

// Part is a fragment of generated or submitted content.
type Part struct {
	Text string `json:"text,omitempty"`
}

// Content groups the parts of one conversational turn.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts,omitempty"`
}

// GenerationConfig carries the sampling parameters for a request.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// Safety category and threshold identifiers as published by the provider.
const (
	HarmCategoryDangerousContent = "HARM_CATEGORY_DANGEROUS_CONTENT"
	HarmCategoryHateSpeech       = "HARM_CATEGORY_HATE_SPEECH"

	HarmBlockNone = "BLOCK_NONE"
)

// SafetySetting relaxes or tightens one harm category for a request.
type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// GenerateRequest is the generateContent request body.
type GenerateRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
	SafetySettings   []SafetySetting   `json:"safetySettings,omitempty"`
}

// FinishReason reports why candidate generation stopped.
//
// The REST surface returns the enum name as a string; older client stacks
// exposed the raw proto enum number (SAFETY is value 3 in the provider's
// v1beta enum), so decoding tolerates both forms.
type FinishReason string

const (
	FinishReasonUnspecified FinishReason = "FINISH_REASON_UNSPECIFIED"
	FinishReasonStop        FinishReason = "STOP"
	FinishReasonMaxTokens   FinishReason = "MAX_TOKENS"
	FinishReasonSafety      FinishReason = "SAFETY"
	FinishReasonRecitation  FinishReason = "RECITATION"
	FinishReasonOther       FinishReason = "OTHER"
)

var finishReasonByNumber = map[int]FinishReason{
	0: FinishReasonUnspecified,
	1: FinishReasonStop,
	2: FinishReasonMaxTokens,
	3: FinishReasonSafety,
	4: FinishReasonRecitation,
	5: FinishReasonOther,
}

// UnmarshalJSON accepts both the string enum name and the numeric enum value.
func (f *FinishReason) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	if trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*f = FinishReason(strings.ToUpper(strings.TrimSpace(name)))
		return nil
	}
	var number int
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return err
	}
	if reason, ok := finishReasonByNumber[number]; ok {
		*f = reason
		return nil
	}
	*f = FinishReasonOther
	return nil
}

// Candidate is one alternative output returned for a single request.
type Candidate struct {
	Content      *Content     `json:"content,omitempty"`
	FinishReason FinishReason `json:"finishReason,omitempty"`
}

// PromptFeedback reports request-level moderation outcomes.
type PromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// GenerateResponse is the generateContent response body.
type GenerateResponse struct {
	Candidates     []Candidate     `json:"candidates,omitempty"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
}

type apiErrorPayload struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

type httpStatusError struct {
	StatusCode int
	Body       string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("gemini request: http %d: %s", e.StatusCode, summarizeBody(e.Body))
}

// GenerateContent issues a single generateContent call against the named
// model (e.g. "models/gemini-flash-latest").
func (c *Client) GenerateContent(ctx context.Context, model string, req GenerateRequest) (*GenerateResponse, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, errors.New("gemini generate: model required")
	}
	if len(req.Contents) == 0 {
		return nil, errors.New("gemini generate: contents required")
	}
	if c.cfg.APIKey == "" {
		return nil, errors.New("gemini generate: api key required")
	}
	endpoint, err := url.JoinPath(c.cfg.BaseURL, apiVersion, model+":generateContent")
	if err != nil {
		return nil, fmt.Errorf("gemini generate: build url: %w", err)
	}
	encoded, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: encode body: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("gemini generate: new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: http error: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		var payload apiErrorPayload
		if err := json.Unmarshal(body, &payload); err == nil && payload.Error != nil {
			return nil, fmt.Errorf("gemini generate: api error %s: %s",
				payload.Error.Status, strings.TrimSpace(payload.Error.Message))
		}
		return nil, &httpStatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	var decoded GenerateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("gemini generate: decode response: %w", err)
	}
	return &decoded, nil
}

func summarizeBody(body string) string {
	clean := strings.Join(strings.Fields(body), " ")
	const limit = 160
	runes := []rune(clean)
	if len(runes) > limit {
		clean = string(runes[:limit]) + "..."
	}
	return clean
}
