package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Success_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, 8080, cfg.WebServerPort)
	require.Equal(t, "fr", cfg.DefaultLocale)
	require.Equal(t, 1500*time.Millisecond, cfg.SubmitDelay)
	require.Equal(t, 10*time.Minute, cfg.ViewStaleAfter)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	require.Empty(t, cfg.SessionSecret)
}

func TestLoadConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("WEBSERVER_PORT", "9090")
	t.Setenv("DEFAULT_LOCALE", "en")
	t.Setenv("SUBMIT_DELAY", "0s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123")

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.WebServerPort)
	require.Equal(t, "en", cfg.DefaultLocale)
	require.Equal(t, time.Duration(0), cfg.SubmitDelay)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	require.Equal(t, "0123456789abcdef0123", cfg.SessionSecret)
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	tests := map[string]string{
		"DEFAULT_LOCALE":   "de",
		"LOG_LEVEL":        "verbose",
		"SESSION_SECRET":   "short",
		"WEBSERVER_PORT":   "70000",
		"VIEW_STALE_AFTER": "10ms",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			t.Setenv(key, value)

			cfg, err := LoadConfig(context.Background())
			require.Error(t, err)
			require.Nil(t, cfg)
		})
	}
}

func TestConfig_LogValueHidesSecret(t *testing.T) {
	cfg := Config{SessionSecret: "super-secret-value"}
	require.NotContains(t, cfg.LogValue().String(), "super-secret-value")
}
