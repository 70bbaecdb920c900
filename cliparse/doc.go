// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Commands that own their flag set (cobra) register the flags and load after
parsing:

	cliparse.BindFlags(cmd.PersistentFlags())
	cfg, err := cliparse.Load(cmd.Flags())

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL connection string or SQLite file (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - ImageDir: Directory for uploaded images (default: ./images)
  - ImageBaseURL: Public prefix for image URLs (default: /images)
  - AdminKey: Secret for moderation endpoints (required)
  - ServerVersion: Version stamped on telemetry (default: dev)
  - LogLevel, LogFormat: slog level and text/json handler

# CLI Flags

	-p, --port            Server port
	-d, --database-url    Database URL
	-t, --database-type   Database type
	--image-dir           Image directory
	--image-base-url      Image URL prefix
	--admin-key           Admin key
	--server-version      Server version
	--log-level           Log level
	--log-format          Log format

# Environment Variables

Flags fall back to environment variables, then to a .env file in the
working directory (loaded with godotenv; it never overrides variables that
are already set):

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	IMAGE_DIR      → --image-dir
	IMAGE_BASE_URL → --image-base-url
	ADMIN_KEY      → --admin-key
	SERVER_VERSION → --server-version
	LOG_LEVEL      → --log-level
	LOG_FORMAT     → --log-format

CLI flags take precedence over environment variables. Resolution goes
through viper.

# Validation

Load returns an error if required values are missing or invalid:

  - DATABASE_URL must be provided
  - ADMIN_KEY must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - LOG_LEVEL must parse as a slog level, LOG_FORMAT must be text or json
*/
package cliparse
