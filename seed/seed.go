// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seed loads exercises from a YAML file into an empty database.
//
// The file uses the same field names as the create endpoint:
//
//	exercises:
//	  - title: Keep it low
//	    description: Move every bubble below 20
//	    constraint_type: lt
//	    upper_bound: 20
//	    points:
//	      - {x: 1, y: 25, size: 3}
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	yamlv3 "gopkg.in/yaml.v3"
	"sigs.k8s.io/yaml"

	"github.com/danielhkuo/range-exercises/models"
)

// Store is the part of the exercise service the seeder uses.
type Store interface {
	List(ctx context.Context, activeOnly bool) ([]models.Exercise, error)
	Create(ctx context.Context, batch []models.NewExercise) ([]models.Exercise, error)
}

// Parse decodes and validates a YAML exercise batch.
func Parse(data []byte) ([]models.NewExercise, error) {
	data, err := quoteStringKeys(data)
	if err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	var req models.CreateExercisesRequest
	if err := yaml.UnmarshalStrict(data, &req); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return req.Validate()
}

// quoteStringKeys re-emits data with every string mapping key quoted.
// The strict decoder follows YAML 1.1, where a bare y, n, on or off key
// is a boolean; quoting keeps a point's "y" a field name.
func quoteStringKeys(data []byte) ([]byte, error) {
	var doc yamlv3.Node
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return data, nil
	}

	quoteKeys(&doc)
	return yamlv3.Marshal(&doc)
}

func quoteKeys(n *yamlv3.Node) {
	if n.Kind == yamlv3.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if key := n.Content[i]; key.Kind == yamlv3.ScalarNode && key.ShortTag() == "!!str" {
				key.Style = yamlv3.DoubleQuotedStyle
			}
		}
	}
	for _, c := range n.Content {
		quoteKeys(c)
	}
}

// LoadFile reads and validates the exercises in path.
func LoadFile(path string) ([]models.NewExercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	batch, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("seed file loaded", "path", path, "size", humanize.Bytes(uint64(len(data))), "exercises", len(batch))
	return batch, nil
}

// Apply creates the exercises in path when the store holds none. It returns
// the number of exercises created.
func Apply(ctx context.Context, store Store, path string) (int, error) {
	existing, err := store.List(ctx, false)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		slog.Info("seed skipped, exercises already exist", "path", path, "existing", len(existing))
		return 0, nil
	}

	batch, err := LoadFile(path)
	if err != nil {
		return 0, err
	}

	created, err := store.Create(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("create seed exercises: %w", err)
	}

	slog.Info("seed applied", "path", path, "exercises", len(created))
	return len(created), nil
}
