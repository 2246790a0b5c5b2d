// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs

RequestID wraps the whole mux. It reuses the client's X-Request-Id or
generates a UUID, echoes it on the response and stores it in the context:

	rid := middleware.GetRequestID(r.Context())

# Request Logging and Metrics

Wrap route handlers:

	mux.HandleFunc("GET /exercises/{id}", middleware.WithLogging(middleware.WithMetrics(h.Get)))

WithLogging logs completion with method, path, status, request_id and
duration_ms. WithMetrics feeds http_requests_total and
http_request_duration_seconds, labelled by the matched route pattern.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin, mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Admin-Key, X-Request-Id.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.EvaluateSolutionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
