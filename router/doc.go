// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Range Exercises API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints, and Wrap
adds the request ID and CORS middleware:

	mux := router.NewRouter(svc, cfg)
	handler := router.Wrap(mux, cfg)

# Endpoints

Health:

	GET /health
	GET /

Exercises (public):

	GET  /exercises                 - List (?active=true for active only)
	GET  /exercises/first           - Lowest display order
	GET  /exercises/{id}            - Exercise with data points
	GET  /exercises/{id}/next       - Id of the following exercise
	POST /exercises/{id}/evaluate   - Judge a solution

Exercises (admin, requires X-Admin-Key):

	POST   /exercises      - Create a batch
	DELETE /exercises/{id} - Delete with data points

Operations:

	GET /metrics   - Prometheus metrics
	GET /swagger/  - OpenAPI UI and doc.json
*/
package router
