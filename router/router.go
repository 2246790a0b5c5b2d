// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/danielhkuo/range-exercises/cliparse"
	_ "github.com/danielhkuo/range-exercises/docs"
	"github.com/danielhkuo/range-exercises/handlers"
	"github.com/danielhkuo/range-exercises/metrics"
	"github.com/danielhkuo/range-exercises/middleware"
)

// Banner is the prefix of the root endpoint's body.
const Banner = "range-exercises API v1"

func NewRouter(svc handlers.ExerciseService, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()
	started := time.Now()

	exerciseHandler := handlers.NewExerciseHandler(svc, cfg)

	api := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Exercises
	mux.HandleFunc("GET /exercises", api(exerciseHandler.List))
	mux.HandleFunc("POST /exercises", api(exerciseHandler.Create))
	mux.HandleFunc("GET /exercises/first", api(exerciseHandler.GetFirst))
	mux.HandleFunc("GET /exercises/{id}", api(exerciseHandler.Get))
	mux.HandleFunc("DELETE /exercises/{id}", api(exerciseHandler.Delete))
	mux.HandleFunc("GET /exercises/{id}/next", api(exerciseHandler.GetNext))
	mux.HandleFunc("POST /exercises/{id}/evaluate", api(exerciseHandler.Evaluate))

	// Operations
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner + ", started " + humanize.Time(started)))
	})

	return mux
}

// Wrap applies the middleware that covers every route.
func Wrap(mux http.Handler, cfg cliparse.Config) http.Handler {
	return middleware.RequestID(middleware.CORS(cfg.AllowedOrigin, mux))
}
