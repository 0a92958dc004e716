// Package parser provides utilities for parsing and transforming adjacency
// data. It reads the supported file formats into validated matrices and
// writes matrices back out for download.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/graphsupply/core/internal/adjacency"
	"github.com/graphsupply/core/internal/models"
)

// Document is a validated matrix read from a file, with the node count the
// file declared, if any.
type Document struct {
	Matrix models.Matrix
	Nodes  *int
}

// ParseWeighted reads a JSON document exposing a "matrix" field and an
// optional "nodes" count.
func ParseWeighted(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty adjacency data")
	}

	var file models.WeightedFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal adjacency file: %w", err)
	}

	if file.Matrix == nil {
		return nil, fmt.Errorf("invalid adjacency file: missing matrix field")
	}

	m, err := adjacency.ToMatrix(file.Matrix)
	if err != nil {
		return nil, fmt.Errorf("invalid adjacency file: %w", err)
	}

	return &Document{Matrix: m, Nodes: file.Nodes}, nil
}
