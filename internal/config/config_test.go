package config

import (
	"testing"
	"time"

	"NutriAssist/internal/locales"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_ENV", "LOG_LEVEL", "COMPLETION_PROVIDER", "COMPLETION_MODEL",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "GEMINI_API_KEY", "GEMINI_BASE_URL",
		"COMPLETION_TIMEOUT", "RETRY_MAX_ATTEMPTS", "RETRY_BASE_DELAY",
		"SESSION_SECRET", "SESSION_TTL", "MAX_SESSIONS", "DEFAULT_LOCALE",
		"RATE_LIMIT_PER_MINUTE", "IP_RATE_LIMIT_PER_MINUTE", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "openai", cfg.CompletionProvider)
	assert.Equal(t, "gpt-3.5-turbo", cfg.Model)
	assert.Equal(t, locales.English, cfg.DefaultLocale)
	assert.NotEmpty(t, cfg.SessionSecret)

	params := cfg.CompletionParams()
	assert.Equal(t, 30*time.Second, params.Timeout)
	assert.Equal(t, 500, params.MaxTokens)

	policy := cfg.RetryPolicy()
	assert.Equal(t, 3, policy.MaxAttempts)
	assert.Equal(t, time.Second, policy.BaseDelay)
}

func TestLoadGemini(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMPLETION_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("DEFAULT_LOCALE", "es-MX")
	t.Setenv("SESSION_TTL", "15m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.CompletionProvider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, locales.Spanish, cfg.DefaultLocale)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	clearEnv(t)
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresSecretInProduction(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("APP_ENV", "production")
	_, err := Load()
	assert.Error(t, err)
}

func TestInvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "eighty")
	t.Setenv("RETRY_BASE_DELAY", "soon")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, time.Second, cfg.RetryBaseDelay)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadConfiguresLogger(t *testing.T) {
	prevLevel, prevLogger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prevLevel)
		log.Logger = prevLogger
		zerolog.DefaultContextLogger = nil
	})

	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LOG_LEVEL", "warn")

	_, err := Load()
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
