// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect Dialect) error {
	ddl := postgresSchema
	if dialect == DialectSQLite {
		ddl = sqliteSchema
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Bound shape per constraint type is enforced by the application on write,
// not by a CHECK, so rows written by other tools can still be detected as corrupt.
const postgresSchema = `
-- Exercises
CREATE TABLE IF NOT EXISTS exercise (
    id TEXT PRIMARY KEY,
    display_order INTEGER NOT NULL UNIQUE CHECK (display_order > 0),
    title VARCHAR(200) NOT NULL,
    description TEXT NOT NULL,
    constraint_type TEXT NOT NULL,
    lower_bound DOUBLE PRECISION,
    upper_bound DOUBLE PRECISION,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_exercise_is_active ON exercise(is_active);

-- Data points
CREATE TABLE IF NOT EXISTS exercise_data_point (
    id TEXT PRIMARY KEY,
    exercise_id TEXT NOT NULL REFERENCES exercise(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    x DOUBLE PRECISION NOT NULL,
    y DOUBLE PRECISION NOT NULL,
    size DOUBLE PRECISION NOT NULL CHECK (size >= 0)
);

CREATE INDEX IF NOT EXISTS idx_exercise_data_point_exercise_id ON exercise_data_point(exercise_id, position);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS exercise (
    id TEXT PRIMARY KEY,
    display_order INTEGER NOT NULL UNIQUE CHECK (display_order > 0),
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    constraint_type TEXT NOT NULL,
    lower_bound REAL,
    upper_bound REAL,
    is_active BOOLEAN NOT NULL DEFAULT 1,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_exercise_is_active ON exercise(is_active);

CREATE TABLE IF NOT EXISTS exercise_data_point (
    id TEXT PRIMARY KEY,
    exercise_id TEXT NOT NULL REFERENCES exercise(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    x REAL NOT NULL,
    y REAL NOT NULL,
    size REAL NOT NULL CHECK (size >= 0)
);

CREATE INDEX IF NOT EXISTS idx_exercise_data_point_exercise_id ON exercise_data_point(exercise_id, position);
`
