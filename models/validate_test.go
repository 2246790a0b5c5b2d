// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestExerciseValidate(t *testing.T) {
	tests := []struct {
		name    string
		ct      ConstraintType
		lower   *float64
		upper   *float64
		wantErr string // field of the expected ValidationError, "-" for none
	}{
		{"lt with upper", ConstraintLT, nil, f(10), "-"},
		{"lt without upper", ConstraintLT, nil, nil, "upper_bound"},
		{"lt with lower", ConstraintLT, f(1), f(10), "lower_bound"},
		{"gt with lower", ConstraintGT, f(1), nil, "-"},
		{"gt without lower", ConstraintGT, nil, nil, "lower_bound"},
		{"gt with upper", ConstraintGT, f(1), f(10), "upper_bound"},
		{"between ordered", ConstraintBetween, f(1), f(10), "-"},
		{"between equal", ConstraintBetween, f(10), f(10), "-"},
		{"between reversed", ConstraintBetween, f(10), f(1), "lower_bound"},
		{"between missing lower", ConstraintBetween, nil, f(10), ""},
		{"between missing upper", ConstraintBetween, f(1), nil, ""},
		{"between missing both", ConstraintBetween, nil, nil, ""},
		{"unknown type", ConstraintType("eq"), f(1), f(2), "constraint_type"},
		{"infinite upper", ConstraintLT, nil, f(math.Inf(1)), "upper_bound"},
		{"nan lower", ConstraintGT, f(math.NaN()), nil, "lower_bound"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := Exercise{
				Title:          "Range",
				Description:    "Move the bubbles",
				ConstraintType: tt.ct,
				LowerBound:     tt.lower,
				UpperBound:     tt.upper,
			}

			err := ex.Validate()
			if tt.wantErr == "-" {
				require.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantErr, ve.Field)
		})
	}
}

func TestExerciseValidate_Text(t *testing.T) {
	base := Exercise{Title: "t", Description: "d", ConstraintType: ConstraintLT, UpperBound: f(1)}

	noTitle := base
	noTitle.Title = "   "
	assert.ErrorContains(t, noTitle.Validate(), "title: is required")

	noDesc := base
	noDesc.Description = ""
	assert.ErrorContains(t, noDesc.Validate(), "description: is required")

	longTitle := base
	longTitle.Title = strings.Repeat("é", MaxTitleLength)
	assert.NoError(t, longTitle.Validate(), "length counts characters, not bytes")

	longTitle.Title += "x"
	assert.ErrorContains(t, longTitle.Validate(), "title: must be at most 200 characters")
}

func TestCreateExercisesRequest_Decode(t *testing.T) {
	body := `{
		"exercises": [
			{
				"title": "Below 20",
				"description": "Keep everything under 20",
				"constraint_type": "lt",
				"upper_bound": 20,
				"points": [{"x": 1, "y": 25, "size": 3}, {"x": 2, "y": 5, "size": 0}]
			},
			{
				"title": "Inactive",
				"description": "Hidden",
				"constraint_type": "gt",
				"lower_bound": -3.5,
				"is_active": false,
				"points": []
			}
		]
	}`

	var req CreateExercisesRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	batch, err := req.Validate()
	require.NoError(t, err)
	require.Len(t, batch, 2)

	assert.True(t, batch[0].IsActive, "is_active defaults to true")
	assert.Equal(t, []NewDataPoint{{X: 1, Y: 25, Size: 3}, {X: 2, Y: 5, Size: 0}}, batch[0].Points)
	assert.Nil(t, batch[0].LowerBound)

	assert.False(t, batch[1].IsActive)
	require.NotNil(t, batch[1].LowerBound)
	assert.Equal(t, -3.5, *batch[1].LowerBound)
	assert.Empty(t, batch[1].Points)
}

func TestCreateExercisesRequest_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing exercises", `{}`, "exercises"},
		{"null exercises", `{"exercises": null}`, "exercises"},
		{"missing points", `{"exercises": [{"title": "t", "description": "d", "constraint_type": "lt", "upper_bound": 1}]}`, "exercises[0].points"},
		{"bad constraint", `{"exercises": [{"title": "t", "description": "d", "constraint_type": "le", "points": []}]}`, "exercises[0].constraint_type"},
		{"missing y", `{"exercises": [{"title": "t", "description": "d", "constraint_type": "lt", "upper_bound": 1, "points": [{"x": 1, "size": 1}]}]}`, "exercises[0].points[0].y"},
		{"negative size", `{"exercises": [{"title": "t", "description": "d", "constraint_type": "lt", "upper_bound": 1, "points": [{"x": 1, "y": 1, "size": -1}]}]}`, "exercises[0].points[0].size"},
		{"between missing bound", `{"exercises": [{"title": "t", "description": "d", "constraint_type": "between", "lower_bound": 1, "points": []}]}`, "exercises[0]"},
		{"second item invalid", `{"exercises": [
			{"title": "t", "description": "d", "constraint_type": "lt", "upper_bound": 1, "points": []},
			{"title": "", "description": "d", "constraint_type": "lt", "upper_bound": 1, "points": []}
		]}`, "exercises[1].title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateExercisesRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			_, err := req.Validate()
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestCreateExerciseRequest_TrimsText(t *testing.T) {
	title := strings.Repeat("t", MaxTitleLength)
	req := CreateExerciseRequest{
		Title:          "  " + title + "\n",
		Description:    "\t Move the bubbles  ",
		ConstraintType: ConstraintLT,
		UpperBound:     f(1),
		Points:         []CreatePointRequest{},
	}

	ex, err := req.NewExercise()
	require.NoError(t, err, "surrounding whitespace does not count toward the title limit")
	assert.Equal(t, title, ex.Title)
	assert.Equal(t, "Move the bubbles", ex.Description)

	req.Title = " " + title + "x "
	_, err = req.NewExercise()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)
}

func TestCreateExercisesRequest_EmptyList(t *testing.T) {
	var req CreateExercisesRequest
	require.NoError(t, json.Unmarshal([]byte(`{"exercises": []}`), &req))

	batch, err := req.Validate()
	require.NoError(t, err)
	assert.Empty(t, batch)
}

func TestEvaluateSolutionRequest_Points(t *testing.T) {
	id := uuid.New()
	req := EvaluateSolutionRequest{Solution: []SolutionPoint{
		{ID: &id, X: f(1), Y: f(2), Size: f(3)},
		{X: f(4), Y: f(5), Size: f(6)},
	}}

	pts, err := req.Points()
	require.NoError(t, err)
	assert.Equal(t, []Point{{X: 1, Y: 2, Size: 3}, {X: 4, Y: 5, Size: 6}}, pts)

	req.Solution = append(req.Solution, SolutionPoint{X: f(1), Size: f(1)})
	_, err = req.Points()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "solution[2].y", ve.Field)

	empty := EvaluateSolutionRequest{}
	pts, err = empty.Points()
	require.NoError(t, err)
	assert.Empty(t, pts)
}

func TestNewExerciseResponse(t *testing.T) {
	ex := Exercise{
		ID:             uuid.New(),
		Order:          3,
		Title:          "Between",
		ConstraintType: ConstraintBetween,
		LowerBound:     f(1),
		UpperBound:     f(2),
		DataPoints:     []DataPoint{{ID: uuid.New(), X: 1, Y: 1.5, Size: 2}},
	}

	resp := NewExerciseResponse(ex)
	assert.Equal(t, "between", resp.ConstraintTypeDisplay)
	assert.Equal(t, 3, resp.Order)
	require.Len(t, resp.DataPoints, 1)
	assert.Equal(t, 1.5, resp.DataPoints[0].Y)

	data, err := json.Marshal(NewExerciseResponse(Exercise{ConstraintType: ConstraintLT, UpperBound: f(4)}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"lower_bound":null`)
	assert.Contains(t, string(data), `"data_points":[]`)
	assert.Contains(t, string(data), `"constraint_type_display":"less than"`)
}

func TestNextExerciseResponse_NullID(t *testing.T) {
	data, err := json.Marshal(NextExerciseResponse{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": null}`, string(data))
}
