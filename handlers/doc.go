// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Range Exercises API.

# Handler Types

ExerciseHandler serves every exercise endpoint. It depends on an
ExerciseService (implemented by exercises.Service) and the Config:

	h := handlers.NewExerciseHandler(exercises.NewService(conn, dialect), cfg)

# Exercise Navigation

Exercises are walked in display order:

	GET /exercises/first     → GetFirst (404 when there are none)
	GET /exercises/{id}/next → GetNext ({"id": null} after the last one)

# Evaluation

	POST /exercises/{id}/evaluate → Evaluate

The body carries the learner's moved points; only their y-values are judged.
An empty solution is rejected with 400.

# Administration

	POST   /exercises      → Create (batch, returns a JSON array)
	DELETE /exercises/{id} → Delete

Both require the X-Admin-Key header when ADMIN_KEY is configured.

# Errors

Validation errors map to 400, unknown exercises to 404, order conflicts to
409. Anything else is logged and answered with a generic 500.
*/
package handlers
