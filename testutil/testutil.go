// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/range-exercises/cliparse"
	"github.com/danielhkuo/range-exercises/db"
	"github.com/danielhkuo/range-exercises/models"
)

// TestDBURL is an in-memory SQLite database; each SetupTestDB call gets its own.
const TestDBURL = ":memory:"

// TestAdminKey is the admin key of GetTestConfig.
const TestAdminKey = "test-admin-key"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.DialectSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupFileTestDB creates a SQLite database file in a temp dir. Unlike
// SetupTestDB it has a pool of db.SQLiteMaxConns connections.
func SetupFileTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "exercises.db")
	conn, err := db.Open(context.Background(), db.DialectSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupPostgresTestDB connects to TEST_DATABASE_URL, recreating the exercise
// tables. The test is skipped when the variable is unset.
func SetupPostgresTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	conn, err := db.Open(context.Background(), db.DialectPostgres, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Clean up tables before each test
	_, err = conn.Exec(`
		DROP TABLE IF EXISTS exercise_data_point CASCADE;
		DROP TABLE IF EXISTS exercise CASCADE;
	`)
	if err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	if err := db.CreateSchema(conn, db.DialectPostgres); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: string(db.DialectSQLite),
		AdminKey:     TestAdminKey,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Float returns a pointer to v, for optional bounds and point fields.
func Float(v float64) *float64 { return &v }

// ExerciseRequest builds a valid create request with one point per y value.
func ExerciseRequest(title string, ct models.ConstraintType, lower, upper *float64, ys ...float64) models.CreateExerciseRequest {
	req := models.CreateExerciseRequest{
		Title:          title,
		Description:    "test exercise " + title,
		ConstraintType: ct,
		LowerBound:     lower,
		UpperBound:     upper,
		Points:         []models.CreatePointRequest{},
	}
	for i, y := range ys {
		req.Points = append(req.Points, models.CreatePointRequest{
			X:    Float(float64(i + 1)),
			Y:    Float(y),
			Size: Float(1),
		})
	}
	return req
}

// InsertRawExercise writes an exercise row directly, bypassing validation.
// Used to simulate rows written by other tools.
func InsertRawExercise(t *testing.T, conn *sql.DB, order int, ct string, lower, upper *float64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	var lo, hi sql.NullFloat64
	if lower != nil {
		lo = sql.NullFloat64{Float64: *lower, Valid: true}
	}
	if upper != nil {
		hi = sql.NullFloat64{Float64: *upper, Valid: true}
	}

	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO exercise (id, display_order, title, description, constraint_type,
			lower_bound, upper_bound, is_active, created_at, updated_at)
		VALUES ($1, $2, 'Raw', 'raw row', $3, $4, $5, TRUE, $6, $7)
	`, id, order, ct, lo, hi, now, now)
	if err != nil {
		t.Fatalf("Failed to insert raw exercise: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AdminHeaders returns the headers of an authorized write request.
func AdminHeaders() map[string]string {
	return map[string]string{"X-Admin-Key": TestAdminKey}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
