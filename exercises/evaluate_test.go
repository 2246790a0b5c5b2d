// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package exercises

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/range-exercises/models"
)

func bound(v float64) sql.NullFloat64 { return sql.NullFloat64{Float64: v, Valid: true} }

func TestCheck(t *testing.T) {
	none := sql.NullFloat64{}

	tests := []struct {
		name       string
		c          models.ConstraintType
		lower      sql.NullFloat64
		upper      sql.NullFloat64
		minY, maxY float64
		want       bool
		corrupt    bool
	}{
		{"lt below", models.ConstraintLT, none, bound(20), 1, 19, true, false},
		{"lt equal is not below", models.ConstraintLT, none, bound(20), 1, 20, false, false},
		{"lt ignores stray lower", models.ConstraintLT, bound(100), bound(20), 1, 19, true, false},
		{"gt above", models.ConstraintGT, bound(20), none, 21, 40, true, false},
		{"gt equal is not above", models.ConstraintGT, bound(20), none, 20, 40, false, false},
		{"between inclusive", models.ConstraintBetween, bound(10), bound(20), 10, 20, true, false},
		{"between under", models.ConstraintBetween, bound(10), bound(20), 9, 20, false, false},
		{"between over", models.ConstraintBetween, bound(10), bound(20), 10, 21, false, false},
		{"negative bounds", models.ConstraintBetween, bound(-5), bound(-1), -4, -2, true, false},
		{"lt missing upper", models.ConstraintLT, bound(1), none, 0, 0, false, true},
		{"gt missing lower", models.ConstraintGT, none, bound(1), 0, 0, false, true},
		{"between missing upper", models.ConstraintBetween, bound(1), none, 0, 0, false, true},
		{"unknown type", models.ConstraintType("ge"), bound(1), bound(2), 0, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := check(tt.c, tt.lower, tt.upper, tt.minY, tt.maxY)
			if tt.corrupt {
				require.ErrorIs(t, err, ErrCorruptExercise)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
