// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/range-exercises/db"
	"github.com/danielhkuo/range-exercises/exercises"
	"github.com/danielhkuo/range-exercises/models"
	"github.com/danielhkuo/range-exercises/testutil"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return NewRouter(exercises.NewService(conn, db.DialectSQLite), testutil.GetTestConfig())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if !strings.HasPrefix(w.Body.String(), Banner+", started ") {
		t.Errorf("Expected body starting with '%s', got '%s'", Banner, w.Body.String())
	}

	// Only the exact root is served by the banner
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/unknown", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown path, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestMux(t)
	id := uuid.New().String()

	// 400, 401, 404 are all valid responses depending on handler logic
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/metrics"},
		{"GET", "/swagger/doc.json"},

		{"GET", "/exercises"},
		{"POST", "/exercises"},
		{"GET", "/exercises/first"},
		{"GET", "/exercises/" + id},
		{"DELETE", "/exercises/" + id},
		{"GET", "/exercises/" + id + "/next"},
		{"POST", "/exercises/" + id + "/evaluate"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"PUT", "/exercises"},
		{"POST", "/exercises/first"},
		{"GET", "/exercises/" + uuid.New().String() + "/evaluate"},
		{"PATCH", "/exercises/" + uuid.New().String()},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestFirstIsNotAnID(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest("GET", "/exercises/first", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	// Routed to GetFirst on an empty database, not to Get with an invalid id
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d. Body: %s", w.Code, w.Body.String())
	}
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "could not find any exercise" {
		t.Errorf("Unexpected message '%s'", resp.Message)
	}
}

func TestExerciseFlow(t *testing.T) {
	mux := newTestMux(t)

	body := models.CreateExercisesRequest{Exercises: []models.CreateExerciseRequest{
		testutil.ExerciseRequest("Below 20", models.ConstraintLT, nil, testutil.Float(20), 25, 5),
	}}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/exercises", body, testutil.AdminHeaders()))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created []models.ExerciseResponse
	testutil.AssertJSON(t, w, &created)
	if len(created) != 1 {
		t.Fatalf("Expected 1 exercise, got %d", len(created))
	}

	solution := map[string]any{"solution": []map[string]any{
		{"x": 1, "y": 12, "size": 1},
		{"x": 2, "y": 13, "size": 1},
	}}
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/exercises/"+created[0].ID.String()+"/evaluate", solution, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var result models.EvaluateSolutionResponse
	testutil.AssertJSON(t, w, &result)
	if !result.IsCorrect {
		t.Error("Expected solution to be correct")
	}
}

func TestOperationalEndpoints(t *testing.T) {
	mux := newTestMux(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/swagger/doc.json", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "/exercises/{id}/evaluate") {
		t.Error("Expected OpenAPI document to describe the evaluate route")
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "exercises_created_total") {
		t.Error("Expected exercise metrics to be exported")
	}
}

func TestWrap(t *testing.T) {
	mux := newTestMux(t)
	handler := Wrap(mux, testutil.GetTestConfig())

	req := httptest.NewRequest("OPTIONS", "/exercises", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Expected CORS headers on preflight")
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("Expected a request id header")
	}
}
