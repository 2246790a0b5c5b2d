// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package docs registers the OpenAPI document served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/exercises": {
            "get": {
                "description": "List exercises in display order",
                "produces": ["application/json"],
                "tags": ["exercises"],
                "parameters": [
                    {"type": "boolean", "description": "only active exercises", "name": "active", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ExerciseListResponse"}}
                }
            },
            "post": {
                "description": "Create new exercises",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["exercises"],
                "parameters": [
                    {"type": "string", "description": "admin key", "name": "X-Admin-Key", "in": "header"},
                    {"description": "exercises to create", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateExercisesRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "array", "items": {"$ref": "#/definitions/ExerciseResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/exercises/first": {
            "get": {
                "description": "Get the first exercise",
                "produces": ["application/json"],
                "tags": ["exercises"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ExerciseResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/exercises/{id}": {
            "get": {
                "description": "Get a range exercise by ID",
                "produces": ["application/json"],
                "tags": ["exercises"],
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ExerciseResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Delete an exercise and its data points",
                "tags": ["exercises"],
                "parameters": [
                    {"type": "string", "description": "admin key", "name": "X-Admin-Key", "in": "header"},
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/exercises/{id}/next": {
            "get": {
                "description": "Get the next exercise after the current one",
                "produces": ["application/json"],
                "tags": ["exercises"],
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/NextExerciseResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/exercises/{id}/evaluate": {
            "post": {
                "description": "Evaluate an exercise's solution",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["exercises"],
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"description": "submitted points", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EvaluateSolutionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EvaluateSolutionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "CreatePointRequest": {
            "type": "object",
            "required": ["x", "y", "size"],
            "properties": {
                "x": {"type": "number"},
                "y": {"type": "number"},
                "size": {"type": "number", "minimum": 0}
            }
        },
        "CreateExerciseRequest": {
            "type": "object",
            "required": ["title", "description", "constraint_type", "points"],
            "properties": {
                "title": {"type": "string", "maxLength": 200},
                "description": {"type": "string"},
                "constraint_type": {"type": "string", "enum": ["lt", "gt", "between"]},
                "lower_bound": {"type": "number", "x-nullable": true},
                "upper_bound": {"type": "number", "x-nullable": true},
                "is_active": {"type": "boolean", "default": true},
                "points": {"type": "array", "items": {"$ref": "#/definitions/CreatePointRequest"}}
            }
        },
        "CreateExercisesRequest": {
            "type": "object",
            "required": ["exercises"],
            "properties": {
                "exercises": {"type": "array", "items": {"$ref": "#/definitions/CreateExerciseRequest"}}
            }
        },
        "DataPointResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "x": {"type": "number"},
                "y": {"type": "number"},
                "size": {"type": "number"}
            }
        },
        "ExerciseResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "order": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "constraint_type": {"type": "string", "enum": ["lt", "gt", "between"]},
                "constraint_type_display": {"type": "string"},
                "lower_bound": {"type": "number", "x-nullable": true},
                "upper_bound": {"type": "number", "x-nullable": true},
                "is_active": {"type": "boolean"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"},
                "data_points": {"type": "array", "items": {"$ref": "#/definitions/DataPointResponse"}}
            }
        },
        "ExerciseListResponse": {
            "type": "object",
            "properties": {
                "exercises": {"type": "array", "items": {"$ref": "#/definitions/ExerciseResponse"}}
            }
        },
        "NextExerciseResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid", "x-nullable": true}
            }
        },
        "SolutionPoint": {
            "type": "object",
            "required": ["x", "y", "size"],
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "x": {"type": "number"},
                "y": {"type": "number"},
                "size": {"type": "number"}
            }
        },
        "EvaluateSolutionRequest": {
            "type": "object",
            "required": ["solution"],
            "properties": {
                "solution": {"type": "array", "items": {"$ref": "#/definitions/SolutionPoint"}}
            }
        },
        "EvaluateSolutionResponse": {
            "type": "object",
            "properties": {
                "is_correct": {"type": "boolean"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Range Exercises API",
	Description:      "Create range exercises and evaluate submitted solutions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
