// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// ValidationError reports input that breaks a field rule or an exercise invariant.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks the constraint invariant of an exercise: LT needs only an
// upper bound, GT needs only a lower bound, BETWEEN needs both with lower <= upper.
func (e *Exercise) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return invalid("title", "is required")
	}
	if utf8.RuneCountInString(e.Title) > MaxTitleLength {
		return invalid("title", "must be at most %d characters", MaxTitleLength)
	}
	if strings.TrimSpace(e.Description) == "" {
		return invalid("description", "is required")
	}
	if e.LowerBound != nil && !finite(*e.LowerBound) {
		return invalid("lower_bound", "must be a finite number")
	}
	if e.UpperBound != nil && !finite(*e.UpperBound) {
		return invalid("upper_bound", "must be a finite number")
	}

	switch e.ConstraintType {
	case ConstraintLT:
		if e.UpperBound == nil {
			return invalid("upper_bound", "is required when constraint_type is lt")
		}
		if e.LowerBound != nil {
			return invalid("lower_bound", "must be null when constraint_type is lt")
		}
	case ConstraintGT:
		if e.LowerBound == nil {
			return invalid("lower_bound", "is required when constraint_type is gt")
		}
		if e.UpperBound != nil {
			return invalid("upper_bound", "must be null when constraint_type is gt")
		}
	case ConstraintBetween:
		if e.LowerBound == nil || e.UpperBound == nil {
			return invalid("", "both lower_bound and upper_bound are required when constraint_type is between")
		}
		if *e.LowerBound > *e.UpperBound {
			return invalid("lower_bound", "can't be greater than upper_bound")
		}
	default:
		return invalid("constraint_type", "unexpected value %q", e.ConstraintType)
	}

	return nil
}

// Validate checks field presence and ranges and converts the request into
// exercises ready for creation. Exercise invariants are checked again on write.
func (r *CreateExercisesRequest) Validate() ([]NewExercise, error) {
	if r.Exercises == nil {
		return nil, invalid("exercises", "is required")
	}

	out := make([]NewExercise, 0, len(r.Exercises))
	for i, req := range r.Exercises {
		ex, err := req.toNewExercise(fmt.Sprintf("exercises[%d]", i))
		if err != nil {
			return nil, err
		}
		out = append(out, ex)
	}
	return out, nil
}

// NewExercise validates a single creation request on its own.
func (r *CreateExerciseRequest) NewExercise() (NewExercise, error) {
	return r.toNewExercise("")
}

func (r *CreateExerciseRequest) toNewExercise(prefix string) (NewExercise, error) {
	field := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}

	if !r.ConstraintType.Valid() {
		return NewExercise{}, invalid(field("constraint_type"), "must be one of lt, gt, between")
	}
	if r.Points == nil {
		return NewExercise{}, invalid(field("points"), "is required")
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	ex := NewExercise{
		Title:          strings.TrimSpace(r.Title),
		Description:    strings.TrimSpace(r.Description),
		ConstraintType: r.ConstraintType,
		LowerBound:     r.LowerBound,
		UpperBound:     r.UpperBound,
		IsActive:       isActive,
		Points:         make([]NewDataPoint, 0, len(r.Points)),
	}

	for i, p := range r.Points {
		pf := field(fmt.Sprintf("points[%d]", i))
		switch {
		case p.X == nil:
			return NewExercise{}, invalid(pf+".x", "is required")
		case p.Y == nil:
			return NewExercise{}, invalid(pf+".y", "is required")
		case p.Size == nil:
			return NewExercise{}, invalid(pf+".size", "is required")
		}
		if !finite(*p.X) || !finite(*p.Y) || !finite(*p.Size) {
			return NewExercise{}, invalid(pf, "coordinates must be finite numbers")
		}
		if *p.Size < 0 {
			return NewExercise{}, invalid(pf+".size", "must be greater than or equal to 0")
		}
		ex.Points = append(ex.Points, NewDataPoint{X: *p.X, Y: *p.Y, Size: *p.Size})
	}

	entity := ex.Entity()
	if err := entity.Validate(); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			if ve.Field == "" {
				ve.Field = prefix
			} else {
				ve.Field = field(ve.Field)
			}
		}
		return NewExercise{}, err
	}

	return ex, nil
}

// Entity returns the exercise fields of n without identity or points.
func (n NewExercise) Entity() Exercise {
	return Exercise{
		Title:          n.Title,
		Description:    n.Description,
		ConstraintType: n.ConstraintType,
		LowerBound:     n.LowerBound,
		UpperBound:     n.UpperBound,
		IsActive:       n.IsActive,
	}
}

// Points validates the submitted solution coordinates. An empty solution is
// left for the evaluator to reject.
func (r *EvaluateSolutionRequest) Points() ([]Point, error) {
	points := make([]Point, 0, len(r.Solution))
	for i, p := range r.Solution {
		pf := fmt.Sprintf("solution[%d]", i)
		switch {
		case p.X == nil:
			return nil, invalid(pf+".x", "is required")
		case p.Y == nil:
			return nil, invalid(pf+".y", "is required")
		case p.Size == nil:
			return nil, invalid(pf+".size", "is required")
		}
		points = append(points, Point{X: *p.X, Y: *p.Y, Size: *p.Size})
	}
	return points, nil
}
