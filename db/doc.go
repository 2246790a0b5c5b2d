// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections and schema creation.

# Connecting

Two dialects are supported: PostgreSQL (github.com/lib/pq) and SQLite
(modernc.org/sqlite, pure Go, used for local development and tests):

	conn, err := db.Open(ctx, db.DialectSQLite, "exercises.db")

SQLite URLs are rewritten to a file: URI with foreign keys on, a busy
timeout, and _txlock=immediate so every transaction takes the write lock
on BEGIN.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, db.DialectPostgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - exercise: title, description, constraint type and bounds, display order
  - exercise_data_point: (x, y, size) bubbles, kept in insertion order

# Relationships

	exercise 1──* exercise_data_point

The foreign key uses ON DELETE CASCADE. exercise.display_order is UNIQUE.
*/
package db
