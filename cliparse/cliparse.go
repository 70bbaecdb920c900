// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	ImageDir      string
	ImageBaseURL  string
	AdminKey      string
	ServerVersion string
	LogLevel      string
	LogFormat     string
}

// setting ties a config key to its flag and environment variable.
type setting struct {
	key   string
	flag  string
	short string
	env   string
	usage string
	def   any
}

var settings = []setting{
	{"port", "port", "p", "PORT", "Server port", 3318},
	{"database_url", "database-url", "d", "DATABASE_URL", "Database URL", ""},
	{"database_type", "database-type", "t", "DATABASE_TYPE", "Database type (sqlite or postgres)", "sqlite"},
	{"image_dir", "image-dir", "", "IMAGE_DIR", "Directory for uploaded puzzle images", "./images"},
	{"image_base_url", "image-base-url", "", "IMAGE_BASE_URL", "Public URL prefix for puzzle images", "/images"},
	// Secret (prefer env variable, but allow CLI for dev)
	{"admin_key", "admin-key", "", "ADMIN_KEY", "Admin key for moderation endpoints (prefer env)", ""},
	{"server_version", "server-version", "", "SERVER_VERSION", "Version reported in telemetry", "dev"},
	{"log_level", "log-level", "", "LOG_LEVEL", "Log level (debug, info, warn, error)", "info"},
	{"log_format", "log-format", "", "LOG_FORMAT", "Log format (text or json)", "text"},
}

// BindFlags registers every configuration flag on fs.
func BindFlags(fs *pflag.FlagSet) {
	for _, s := range settings {
		switch def := s.def.(type) {
		case int:
			fs.IntP(s.flag, s.short, def, s.usage)
		case string:
			fs.StringP(s.flag, s.short, def, s.usage)
		}
	}
}

// ParseFlags parses args and resolves the configuration
func ParseFlags(args []string) (Config, error) {
	fs := pflag.NewFlagSet("puzzlebox", pflag.ContinueOnError)
	BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return Load(fs)
}

// Load resolves the configuration from already-parsed flags, the
// environment and an optional .env file. Precedence: flag > env > .env >
// default. A .env file never overrides variables already set.
func Load(fs *pflag.FlagSet) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	v := viper.New()
	for _, s := range settings {
		v.SetDefault(s.key, s.def)
		if err := v.BindEnv(s.key, s.env); err != nil {
			return Config{}, err
		}
		if f := fs.Lookup(s.flag); f != nil {
			if err := v.BindPFlag(s.key, f); err != nil {
				return Config{}, err
			}
		}
	}

	cfg := Config{
		Port:          v.GetInt("port"),
		DatabaseURL:   v.GetString("database_url"),
		DatabaseType:  strings.ToLower(v.GetString("database_type")),
		ImageDir:      v.GetString("image_dir"),
		ImageBaseURL:  v.GetString("image_base_url"),
		AdminKey:      v.GetString("admin_key"),
		ServerVersion: v.GetString("server_version"),
		LogLevel:      strings.ToLower(v.GetString("log_level")),
		LogFormat:     strings.ToLower(v.GetString("log_format")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks required settings and enumerated values.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if c.DatabaseType != "sqlite" && c.DatabaseType != "postgres" {
		return fmt.Errorf("unsupported database type %q (sqlite or postgres)", c.DatabaseType)
	}
	// Secrets - MUST be provided
	if c.AdminKey == "" {
		return errors.New("ADMIN_KEY required")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unsupported log format %q (text or json)", c.LogFormat)
	}
	return nil
}

// SlogLevel converts LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger builds the process logger described by the config.
func (c Config) NewLogger() *slog.Logger {
	level, err := c.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
