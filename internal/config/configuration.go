package config

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// WebServer Configuration
	WebServerPort int    `mapstructure:"WEBSERVER_PORT" validate:"min=1,max=65535"`
	SessionSecret string `mapstructure:"SESSION_SECRET" validate:"omitempty,min=16"`

	// Site Configuration
	DefaultLocale  string        `mapstructure:"DEFAULT_LOCALE" validate:"oneof=fr en"`
	SubmitDelay    time.Duration `mapstructure:"SUBMIT_DELAY" validate:"min=0"`
	ViewStaleAfter time.Duration `mapstructure:"VIEW_STALE_AFTER" validate:"min=1s"`

	// Logging Configuration
	LogLevel string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// SlogLevel maps LogLevel onto slog's levels.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// LogValue keeps the session secret out of the logs.
func (c Config) LogValue() slog.Value {
	secret := "unset"
	if c.SessionSecret != "" {
		secret = "set"
	}
	return slog.GroupValue(
		slog.Int("webserver_port", c.WebServerPort),
		slog.String("session_secret", secret),
		slog.String("default_locale", c.DefaultLocale),
		slog.Duration("submit_delay", c.SubmitDelay),
		slog.Duration("view_stale_after", c.ViewStaleAfter),
		slog.String("log_level", c.LogLevel),
	)
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c Config) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag != "" {
			viper.BindEnv(tag)
		}

		// Handle nested structs
		if field.Type.Kind() == reflect.Struct && tag == "" {
			nestedTyp := fieldVal.Type()
			for j := 0; j < fieldVal.NumField(); j++ {
				nestedField := nestedTyp.Field(j)
				nestedTag := nestedField.Tag.Get("mapstructure")
				if nestedTag != "" {
					viper.BindEnv(nestedTag)
				}
			}
		}
	}
	slog.Debug("Environment variables bound")
}

func LoadConfig(ctx context.Context) (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("WEBSERVER_PORT", 8080)
	viper.SetDefault("DEFAULT_LOCALE", "fr")
	viper.SetDefault("SUBMIT_DELAY", "1500ms")
	viper.SetDefault("VIEW_STALE_AFTER", "10m")
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	slog.InfoContext(ctx, "Loaded configuration", "config", cfg)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
