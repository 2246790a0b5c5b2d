// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateExercisesRequest: exercises (batch of CreateExerciseRequest)
  - CreateExerciseRequest: title, description, constraint_type, lower_bound,
    upper_bound, is_active, points
  - CreatePointRequest: x, y, size (size >= 0)
  - EvaluateSolutionRequest: solution (list of SolutionPoint)

Numeric fields are pointers so a missing field can be told apart from zero.

# Response Types

Types for JSON responses:

  - ExerciseResponse: exercise with constraint_type_display and data_points
  - ExerciseListResponse: exercises
  - NextExerciseResponse: id (null after the last exercise)
  - EvaluateSolutionResponse: is_correct
  - ErrorResponse: error, message

# Domain Types

  - Exercise: persisted exercise with its data points
  - DataPoint: persisted (x, y, size) bubble
  - NewExercise, NewDataPoint: validated creation input
  - Point: validated solution point

# Constraint Types

	ConstraintLT      = "lt"       // max(y) < upper_bound
	ConstraintGT      = "gt"       // min(y) > lower_bound
	ConstraintBetween = "between"  // lower_bound <= y <= upper_bound

Exercise.Validate enforces which bounds each type needs. Violations are
returned as *ValidationError.
*/
package models
