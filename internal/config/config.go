// Package config reads service settings from the environment (and .env).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"NutriAssist/internal/completion"
	"NutriAssist/internal/locales"
	"NutriAssist/internal/retry"
	"NutriAssist/internal/utility"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	Port     int
	AppEnv   string // "development" or "production"
	LogLevel string

	// Completion backend
	CompletionProvider string // "openai" or "gemini"
	APIKey             string
	CompletionBaseURL  string
	Model              string
	RequestTimeout     time.Duration
	RetryMaxAttempts   int
	RetryBaseDelay     time.Duration

	// Sessions
	SessionSecret    string
	SessionTTL       time.Duration
	MaxSessions      int
	DefaultLocale    locales.Locale
	MessagesPerMin   int // per session
	IPMessagesPerMin int // per client IP, across sessions
	AllowedOrigins   []string
}

// Load loads configuration from environment variables with defaults and
// configures the global logger before anything is logged. A missing .env file
// is not an error.
func Load() (*Config, error) {
	envErr := godotenv.Load()

	cfg := &Config{
		Port:     getIntEnv("PORT", 8080),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		CompletionProvider: strings.ToLower(getEnv("COMPLETION_PROVIDER", "openai")),
		Model:              getEnv("COMPLETION_MODEL", ""),
		RequestTimeout:     getDurationEnv("COMPLETION_TIMEOUT", 30*time.Second),
		RetryMaxAttempts:   getIntEnv("RETRY_MAX_ATTEMPTS", retry.DefaultMaxAttempts),
		RetryBaseDelay:     getDurationEnv("RETRY_BASE_DELAY", retry.DefaultBaseDelay),

		SessionSecret:    getEnv("SESSION_SECRET", ""),
		SessionTTL:       getDurationEnv("SESSION_TTL", 2*time.Hour),
		MaxSessions:      getIntEnv("MAX_SESSIONS", 1000),
		DefaultLocale:    locales.Match(getEnv("DEFAULT_LOCALE", "en")),
		MessagesPerMin:   getIntEnv("RATE_LIMIT_PER_MINUTE", 30),
		IPMessagesPerMin: getIntEnv("IP_RATE_LIMIT_PER_MINUTE", 120),
		AllowedOrigins:   getListEnv("CORS_ALLOWED_ORIGINS", []string{"https://*", "http://*"}),
	}

	utility.SetupLogger(cfg.AppEnv, cfg.LogLevel)
	if envErr != nil {
		log.Warn().Msg("No .env file found, reading configuration from the environment")
	}

	switch cfg.CompletionProvider {
	case "openai":
		cfg.APIKey = getEnv("OPENAI_API_KEY", "")
		cfg.CompletionBaseURL = getEnv("OPENAI_BASE_URL", "")
		if cfg.Model == "" {
			cfg.Model = completion.DefaultModel
		}
	case "gemini":
		cfg.APIKey = getEnv("GEMINI_API_KEY", "")
		cfg.CompletionBaseURL = getEnv("GEMINI_BASE_URL", "")
		if cfg.Model == "" {
			cfg.Model = completion.DefaultGeminiModel
		}
	default:
		return nil, fmt.Errorf("unsupported COMPLETION_PROVIDER %q (want openai or gemini)", cfg.CompletionProvider)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("please set the API key for the %s completion provider", cfg.CompletionProvider)
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SESSION_SECRET must be set in production")
		}
		secret, err := utility.GenerateSecureToken(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		log.Warn().Msg("SESSION_SECRET not set, using a random secret; session cookies will not survive a restart")
		cfg.SessionSecret = secret
	}

	return cfg, nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// CompletionParams are the fixed sampling settings with the configured model
// and timeout applied.
func (c *Config) CompletionParams() completion.Params {
	p := completion.DefaultParams()
	p.Model = c.Model
	if c.RequestTimeout > 0 {
		p.Timeout = c.RequestTimeout
	}
	return p
}

// RetryPolicy is the configured attempt budget and backoff.
func (c *Config) RetryPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts: c.RetryMaxAttempts,
		BaseDelay:   c.RetryBaseDelay,
		Retryable:   completion.IsRetryable,
	}
}

// CompletionConfig selects the backend client.
func (c *Config) CompletionConfig() completion.Config {
	return completion.Config{
		Provider: c.CompletionProvider,
		APIKey:   c.APIKey,
		BaseURL:  c.CompletionBaseURL,
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid integer in environment, using default")
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid duration in environment, using default")
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
