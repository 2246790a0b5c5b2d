// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package exercises

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danielhkuo/range-exercises/metrics"
	"github.com/danielhkuo/range-exercises/models"
)

// Evaluate reports whether the y-values of solution satisfy the exercise's
// constraint. An empty solution is a *models.ValidationError; bounds that do
// not match the stored constraint type are reported as ErrCorruptExercise.
func (s *Service) Evaluate(ctx context.Context, id uuid.UUID, solution []models.Point) (bool, error) {
	if len(solution) == 0 {
		return false, &models.ValidationError{
			Field:   "solution",
			Message: "must contain at least one data point",
		}
	}

	minY, maxY := solution[0].Y, solution[0].Y
	for _, p := range solution[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	var (
		constraintType string
		lower, upper   sql.NullFloat64
	)
	err := s.conn.QueryRowContext(ctx, `
		SELECT constraint_type, lower_bound, upper_bound
		FROM exercise
		WHERE id = $1
	`, id).Scan(&constraintType, &lower, &upper)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("%w: %s", ErrExerciseNotFound, id)
	}
	if err != nil {
		return false, fmt.Errorf("query exercise %s: %w", id, err)
	}

	correct, err := check(models.ConstraintType(constraintType), lower, upper, minY, maxY)
	if err != nil {
		slog.Error("exercise has inconsistent bounds", "exercise_id", id, "error", err)
		return false, fmt.Errorf("evaluate exercise %s: %w", id, err)
	}

	metrics.ObserveEvaluation(constraintType, correct)
	return correct, nil
}

func check(c models.ConstraintType, lower, upper sql.NullFloat64, minY, maxY float64) (bool, error) {
	switch c {
	case models.ConstraintLT:
		if !upper.Valid {
			return false, fmt.Errorf("%w: upper_bound is unexpectedly null", ErrCorruptExercise)
		}
		return maxY < upper.Float64, nil

	case models.ConstraintGT:
		if !lower.Valid {
			return false, fmt.Errorf("%w: lower_bound is unexpectedly null", ErrCorruptExercise)
		}
		return minY > lower.Float64, nil

	case models.ConstraintBetween:
		if !lower.Valid {
			return false, fmt.Errorf("%w: lower_bound is unexpectedly null", ErrCorruptExercise)
		}
		if !upper.Valid {
			return false, fmt.Errorf("%w: upper_bound is unexpectedly null", ErrCorruptExercise)
		}
		return minY >= lower.Float64 && maxY <= upper.Float64, nil
	}

	return false, fmt.Errorf("%w: unexpected constraint_type %q", ErrCorruptExercise, c)
}
