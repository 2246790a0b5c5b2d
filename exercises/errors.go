// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package exercises

import "errors"

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrNoExercises      = errors.New("could not find any exercise")
	ErrOrderConflict    = errors.New("exercise order already taken")

	// ErrCorruptExercise marks stored rows whose bounds do not match their
	// constraint type. It is never caused by user input.
	ErrCorruptExercise = errors.New("invalid exercise data")
)
