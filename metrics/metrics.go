// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric definitions:
//   - http_requests_total: requests by route pattern, method and status
//   - http_request_duration_seconds: request latency by route pattern and method
//   - exercise_evaluations_total: evaluated solutions by constraint type and result
//   - exercises_created_total: exercises persisted
var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by path, method and status."},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	Evaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "exercise_evaluations_total", Help: "Evaluated solutions by constraint type and result."},
		[]string{"constraint", "result"},
	)
	ExercisesCreated = prometheus.NewCounter(prometheus.CounterOpts{Name: "exercises_created_total", Help: "Exercises created."})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, Evaluations, ExercisesCreated)
}

// ObserveEvaluation records the outcome of one solution evaluation.
func ObserveEvaluation(constraint string, correct bool) {
	result := "incorrect"
	if correct {
		result = "correct"
	}
	Evaluations.WithLabelValues(constraint, result).Inc()
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler { return promhttp.Handler() }
