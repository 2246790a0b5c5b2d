// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Range Exercises API server.

Range exercises are data-visualization drills: the learner gets a set of
(x, y, size) bubbles and must move them so every y-value is less than,
greater than, or between the exercise's bounds. The server stores exercises
in display order and judges submitted solutions.

# Starting the Server

The server reads a .env file, environment variables or CLI flags:

	DATABASE_URL=exercises.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_KEY (--admin-key): Key required by write endpoints
  - SEED_FILE (--seed): YAML exercises created when the database is empty
  - LOG_LEVEL (--log-level), LOG_FORMAT (--log-format): slog setup
  - ALLOWED_ORIGIN (--origin): CORS origin of the exercise UI

# Architecture

  - handlers: HTTP request handlers for exercises
  - exercises: Service layer (order allocation, evaluation)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request IDs, CORS, logging, metrics, JSON helpers
  - models: Request/response and domain types, validation
  - auth: Admin key check
  - db: Connections and schema creation
  - metrics: Prometheus collectors
  - docs: OpenAPI document for /swagger/
  - seed: YAML seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
