/*
Package completion talks to hosted chat-completion APIs. Each backend makes
exactly one HTTP call per Complete; retrying is the caller's business.
*/
package completion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Role of a transcript turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Message is one transcript turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Params are the sampling settings sent with every request.
type Params struct {
	Model            string
	Temperature      float64
	MaxTokens        int
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
	Timeout          time.Duration
}

const (
	DefaultModel       = "gpt-3.5-turbo"
	DefaultGeminiModel = "gemini-2.5-flash"
	requestTimeout     = 30 * time.Second
)

// DefaultParams are the fixed conversation settings.
func DefaultParams() Params {
	return Params{
		Model:            DefaultModel,
		Temperature:      0.7,
		MaxTokens:        500,
		TopP:             0.9,
		FrequencyPenalty: 0.3,
		PresencePenalty:  0.3,
		Timeout:          requestTimeout,
	}
}

// Client produces the next assistant turn for a transcript.
type Client interface {
	Complete(ctx context.Context, messages []Message, params Params) (string, error)
}

// ErrRateLimited matches (via errors.Is) any APIError with status 429.
var ErrRateLimited = errors.New("rate limited")

// ErrEmptyResponse is returned when the backend answers 200 without any text.
var ErrEmptyResponse = errors.New("no content found in completion response")

// APIError is a non-200 answer from the backend.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API returned non-200 status: %s, Body: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrRateLimited && e.StatusCode == http.StatusTooManyRequests
}

// IsRetryable reports whether err is worth another attempt: rate limits and
// other API errors are, transport and decoding failures are not.
func IsRetryable(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// Config selects and configures a backend.
type Config struct {
	Provider   string // "openai" or "gemini"
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// New builds the backend named by cfg.Provider.
func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("completion: missing API key for provider %q", cfg.Provider)
	}
	switch strings.ToLower(cfg.Provider) {
	case "", "openai":
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey, cfg.HTTPClient), nil
	case "gemini":
		return NewGeminiClient(cfg.BaseURL, cfg.APIKey, cfg.HTTPClient), nil
	default:
		return nil, fmt.Errorf("completion: unknown provider %q", cfg.Provider)
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = requestTimeout
	}
	return context.WithTimeout(ctx, d)
}
