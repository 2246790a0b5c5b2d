// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/danielhkuo/range-exercises/auth"
	"github.com/danielhkuo/range-exercises/cliparse"
	"github.com/danielhkuo/range-exercises/exercises"
	"github.com/danielhkuo/range-exercises/middleware"
	"github.com/danielhkuo/range-exercises/models"
)

// ExerciseService is the set of exercise operations the handlers need.
type ExerciseService interface {
	Get(ctx context.Context, id uuid.UUID) (models.Exercise, error)
	GetFirst(ctx context.Context) (models.Exercise, error)
	GetNext(ctx context.Context, id uuid.UUID) (*models.Exercise, error)
	List(ctx context.Context, activeOnly bool) ([]models.Exercise, error)
	Create(ctx context.Context, batch []models.NewExercise) ([]models.Exercise, error)
	Evaluate(ctx context.Context, id uuid.UUID, solution []models.Point) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ExerciseHandler struct {
	svc ExerciseService
	cfg cliparse.Config
}

func NewExerciseHandler(svc ExerciseService, cfg cliparse.Config) *ExerciseHandler {
	return &ExerciseHandler{svc: svc, cfg: cfg}
}

// List handles GET /exercises
func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	list, err := h.svc.List(r.Context(), activeOnly)
	if err != nil {
		h.serviceError(w, r, err, "list exercises")
		return
	}

	resp := models.ExerciseListResponse{Exercises: make([]models.ExerciseResponse, 0, len(list))}
	for _, ex := range list {
		resp.Exercises = append(resp.Exercises, models.NewExerciseResponse(ex))
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Create handles POST /exercises
func (h *ExerciseHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateRequest(r, h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.CreateExercisesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	batch, err := req.Validate()
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.svc.Create(r.Context(), batch)
	if err != nil {
		h.serviceError(w, r, err, "create exercises")
		return
	}

	resp := make([]models.ExerciseResponse, 0, len(created))
	for _, ex := range created {
		resp = append(resp, models.NewExerciseResponse(ex))
	}
	middleware.JSONResponse(w, http.StatusCreated, resp)
}

// Get handles GET /exercises/{id}
func (h *ExerciseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := exerciseID(w, r)
	if !ok {
		return
	}

	ex, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.serviceError(w, r, err, "get exercise")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.NewExerciseResponse(ex))
}

// GetFirst handles GET /exercises/first
func (h *ExerciseHandler) GetFirst(w http.ResponseWriter, r *http.Request) {
	ex, err := h.svc.GetFirst(r.Context())
	if err != nil {
		h.serviceError(w, r, err, "get first exercise")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.NewExerciseResponse(ex))
}

// GetNext handles GET /exercises/{id}/next
// Returns {"id": null} after the last exercise
func (h *ExerciseHandler) GetNext(w http.ResponseWriter, r *http.Request) {
	id, ok := exerciseID(w, r)
	if !ok {
		return
	}

	next, err := h.svc.GetNext(r.Context(), id)
	if err != nil {
		h.serviceError(w, r, err, "get next exercise")
		return
	}

	var resp models.NextExerciseResponse
	if next != nil {
		resp.ID = &next.ID
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Evaluate handles POST /exercises/{id}/evaluate
func (h *ExerciseHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	id, ok := exerciseID(w, r)
	if !ok {
		return
	}

	var req models.EvaluateSolutionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	points, err := req.Points()
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	correct, err := h.svc.Evaluate(r.Context(), id, points)
	if err != nil {
		h.serviceError(w, r, err, "evaluate solution")
		return
	}

	slog.Debug("solution evaluated", "exercise_id", id, "points", len(points), "is_correct", correct)

	middleware.JSONResponse(w, http.StatusOK, models.EvaluateSolutionResponse{IsCorrect: correct})
}

// Delete handles DELETE /exercises/{id}
func (h *ExerciseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateRequest(r, h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	id, ok := exerciseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.serviceError(w, r, err, "delete exercise")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func exerciseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid exercise id")
		return uuid.Nil, false
	}
	return id, true
}

// serviceError maps service errors to status codes. Unexpected errors are
// logged and hidden behind a generic message.
func (h *ExerciseHandler) serviceError(w http.ResponseWriter, r *http.Request, err error, op string) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		middleware.ErrorResponse(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, exercises.ErrExerciseNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("Exercise with id %s not found", r.PathValue("id")))
	case errors.Is(err, exercises.ErrNoExercises):
		middleware.ErrorResponse(w, http.StatusNotFound, "could not find any exercise")
	case errors.Is(err, exercises.ErrOrderConflict):
		middleware.ErrorResponse(w, http.StatusConflict, "exercise order already taken, retry the request")
	default:
		slog.Error("failed to "+op, "error", err, "request_id", middleware.GetRequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to "+op)
	}
}
