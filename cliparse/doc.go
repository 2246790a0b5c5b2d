// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadEnvFile reads an optional .env file, then ParseFlags returns a Config
struct with all settings:

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite path or PostgreSQL connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminKey: Key for write endpoints (empty disables the check)
  - SeedFile: YAML exercises to create on an empty database
  - LogLevel, LogFormat: slog level and text/json handler
  - AllowedOrigin: CORS origin of the exercise UI

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--admin-key   Admin key
	--seed        Seed file
	--log-level   Log level
	--log-format  Log format
	--origin      Allowed CORS origin

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY      → --admin-key
	SEED_FILE      → --seed
	LOG_LEVEL      → --log-level
	LOG_FORMAT     → --log-format
	ALLOWED_ORIGIN → --origin

CLI flags take precedence over environment variables, which take precedence
over values from .env.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - PORT is not a number
  - LOG_LEVEL or LOG_FORMAT is not recognized

# Logging

NewLogger builds the slog.Logger described by the config:

	slog.SetDefault(cfg.NewLogger())
*/
package cliparse
