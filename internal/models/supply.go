// Package models defines the core data structures shared by the generator,
// the analyzer and the HTTP layer. It includes matrix documents, generation
// parameters and the drawable graph representation.
package models

// Matrix is a row-major N×N adjacency matrix. Zero means no edge, any other
// value is the edge weight.
type Matrix [][]float64

// RawMatrix is a matrix as decoded from an untrusted source, before its
// shape and entry types have been validated.
type RawMatrix [][]any

type GenerationParameters struct {
	Nodes    int     `json:"nodes"`
	Density  float64 `json:"density"`
	Directed bool    `json:"directed"`
	Weighted bool    `json:"weighted"`
	Loops    bool    `json:"loops"`
}

// ParamsEcho repeats the effective generation parameters together with the
// produced matrix dimensions.
type ParamsEcho struct {
	GenerationParameters
	Lines   int `json:"lines"`
	Columns int `json:"columns"`
}

type EdgeStatistics struct {
	Directed bool   `json:"directed"`
	Count    int    `json:"count"`
	Message  string `json:"message"`
}

type Metadata struct {
	Params           ParamsEcho        `json:"params"`
	Edges            float64           `json:"edges"`
	Message          string            `json:"message"`
	UnderstoodParams map[string]string `json:"understood_params"`
}

// GraphResult is the bundle returned for every generation request.
type GraphResult struct {
	Metadata Metadata `json:"metadata"`
	Matrix   Matrix   `json:"matrix"`
}

// WeightedFile is the on-disk JSON layout of a weighted adjacency file.
type WeightedFile struct {
	Matrix RawMatrix `json:"matrix"`
	Nodes  *int      `json:"nodes,omitempty"`
}

// MatrixDocument is served for plain adjacency files.
type MatrixDocument struct {
	Lines   int    `json:"lines"`
	Columns int    `json:"columns"`
	Matrix  Matrix `json:"matrix"`
}

// AnalyzedDocument is served for weighted adjacency files and carries the
// analyzer's statistics next to the matrix.
type AnalyzedDocument struct {
	Lines    int    `json:"lines"`
	Columns  int    `json:"columns"`
	Nodes    *int   `json:"nodes,omitempty"`
	Edges    int    `json:"edges"`
	Directed bool   `json:"directed"`
	Message  string `json:"message"`
	Matrix   Matrix `json:"matrix"`
}
