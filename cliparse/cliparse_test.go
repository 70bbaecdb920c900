// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("ADMIN_KEY", "test-admin-key")
}

func TestParseFlags_EnvVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "POSTGRES")
	t.Setenv("SERVER_VERSION", "1.4.2")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected database type postgres, got %q", cfg.DatabaseType)
	}
	if cfg.ServerVersion != "1.4.2" {
		t.Errorf("expected server version 1.4.2, got %q", cfg.ServerVersion)
	}
	if cfg.AdminKey != "test-admin-key" {
		t.Errorf("expected admin key from env, got %q", cfg.AdminKey)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:other.db", "--admin-key", "k2"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:other.db" {
		t.Errorf("CLI should override env: got database URL %q", cfg.DatabaseURL)
	}
	if cfg.AdminKey != "k2" {
		t.Errorf("CLI should override env: got admin key %q", cfg.AdminKey)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.ImageDir != "./images" || cfg.ImageBaseURL != "/images" {
		t.Errorf("unexpected image defaults: %q %q", cfg.ImageDir, cfg.ImageBaseURL)
	}
	if cfg.ServerVersion != "dev" {
		t.Errorf("expected default server version dev, got %q", cfg.ServerVersion)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("unexpected log defaults: %q %q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing database URL", map[string]string{"ADMIN_KEY": "k"}, nil},
		{"missing admin key", map[string]string{"DATABASE_URL": "file:x.db"}, nil},
		{"bad port env", map[string]string{"DATABASE_URL": "file:x.db", "ADMIN_KEY": "k", "PORT": "abc"}, nil},
		{"unknown database type", map[string]string{"DATABASE_URL": "file:x.db", "ADMIN_KEY": "k"}, []string{"-t", "mysql"}},
		{"bad log level", map[string]string{"DATABASE_URL": "file:x.db", "ADMIN_KEY": "k", "LOG_LEVEL": "loud"}, nil},
		{"bad log format", map[string]string{"DATABASE_URL": "file:x.db", "ADMIN_KEY": "k"}, []string{"--log-format", "xml"}},
		{"unknown flag", map[string]string{"DATABASE_URL": "file:x.db", "ADMIN_KEY": "k"}, []string{"--nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")
			t.Setenv("ADMIN_KEY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoad_SharedFlagSet(t *testing.T) {
	setRequiredEnv(t)

	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	BindFlags(fs)
	if err := fs.Parse([]string{"--log-level", "debug", "--log-format", "json"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(fs)
	if err != nil {
		t.Fatal(err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		t.Fatal(err)
	}
	if level != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", level)
	}
	if cfg.NewLogger() == nil {
		t.Error("NewLogger() returned nil")
	}
}
