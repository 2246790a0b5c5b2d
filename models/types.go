// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ConstraintType is the rule bounding acceptable y-values of a solution.
type ConstraintType string

// Constraint type constants
const (
	ConstraintLT      ConstraintType = "lt"
	ConstraintGT      ConstraintType = "gt"
	ConstraintBetween ConstraintType = "between"
)

// MaxTitleLength is the longest accepted exercise title, in characters.
const MaxTitleLength = 200

// Valid reports whether c is one of the known constraint types.
func (c ConstraintType) Valid() bool {
	switch c {
	case ConstraintLT, ConstraintGT, ConstraintBetween:
		return true
	}
	return false
}

// Display returns the human label of the constraint type.
func (c ConstraintType) Display() string {
	switch c {
	case ConstraintLT:
		return "less than"
	case ConstraintGT:
		return "greater than"
	case ConstraintBetween:
		return "between"
	}
	return string(c)
}

// Request types

type CreatePointRequest struct {
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
	Size *float64 `json:"size"`
}

type CreateExerciseRequest struct {
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	ConstraintType ConstraintType       `json:"constraint_type"`
	LowerBound     *float64             `json:"lower_bound,omitempty"`
	UpperBound     *float64             `json:"upper_bound,omitempty"`
	IsActive       *bool                `json:"is_active,omitempty"` // defaults to true
	Points         []CreatePointRequest `json:"points"`
}

type CreateExercisesRequest struct {
	Exercises []CreateExerciseRequest `json:"exercises"`
}

// SolutionPoint is a point submitted for evaluation. The id echoes the
// exercise data point the learner moved and is not required.
type SolutionPoint struct {
	ID   *uuid.UUID `json:"id,omitempty"`
	X    *float64   `json:"x"`
	Y    *float64   `json:"y"`
	Size *float64   `json:"size"`
}

type EvaluateSolutionRequest struct {
	Solution []SolutionPoint `json:"solution"`
}

// Response types

type DataPointResponse struct {
	ID   uuid.UUID `json:"id"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
	Size float64   `json:"size"`
}

type ExerciseResponse struct {
	ID                    uuid.UUID           `json:"id"`
	Order                 int                 `json:"order"`
	Title                 string              `json:"title"`
	Description           string              `json:"description"`
	ConstraintType        ConstraintType      `json:"constraint_type"`
	ConstraintTypeDisplay string              `json:"constraint_type_display"`
	LowerBound            *float64            `json:"lower_bound"`
	UpperBound            *float64            `json:"upper_bound"`
	IsActive              bool                `json:"is_active"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
	DataPoints            []DataPointResponse `json:"data_points"`
}

type ExerciseListResponse struct {
	Exercises []ExerciseResponse `json:"exercises"`
}

// NextExerciseResponse carries a null id after the last exercise.
type NextExerciseResponse struct {
	ID *uuid.UUID `json:"id"`
}

type EvaluateSolutionResponse struct {
	IsCorrect bool `json:"is_correct"`
}

// Domain types

type DataPoint struct {
	ID   uuid.UUID
	X    float64
	Y    float64
	Size float64
}

type Exercise struct {
	ID             uuid.UUID
	Order          int
	Title          string
	Description    string
	ConstraintType ConstraintType
	LowerBound     *float64
	UpperBound     *float64
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DataPoints     []DataPoint
}

// NewDataPoint is a point to insert under a new exercise.
type NewDataPoint struct {
	X    float64
	Y    float64
	Size float64
}

// NewExercise is the validated input of a single exercise creation.
type NewExercise struct {
	Title          string
	Description    string
	ConstraintType ConstraintType
	LowerBound     *float64
	UpperBound     *float64
	IsActive       bool
	Points         []NewDataPoint
}

// Point is a submitted solution point with all coordinates present.
type Point struct {
	X    float64
	Y    float64
	Size float64
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewExerciseResponse converts a domain exercise to its wire form.
func NewExerciseResponse(e Exercise) ExerciseResponse {
	points := make([]DataPointResponse, 0, len(e.DataPoints))
	for _, p := range e.DataPoints {
		points = append(points, DataPointResponse{ID: p.ID, X: p.X, Y: p.Y, Size: p.Size})
	}

	return ExerciseResponse{
		ID:                    e.ID,
		Order:                 e.Order,
		Title:                 e.Title,
		Description:           e.Description,
		ConstraintType:        e.ConstraintType,
		ConstraintTypeDisplay: e.ConstraintType.Display(),
		LowerBound:            e.LowerBound,
		UpperBound:            e.UpperBound,
		IsActive:              e.IsActive,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
		DataPoints:            points,
	}
}
