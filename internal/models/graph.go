// Package models defines the core data structures shared by the generator,
// the analyzer and the HTTP layer. It includes matrix documents, generation
// parameters and the drawable graph representation.
package models

// Graph is the drawable form of an adjacency matrix: one node per row and
// one edge per non-zero cell that a renderer should paint.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Stats *Stats `json:"stats,omitempty"`
}

type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Edge struct {
	ID     string  `json:"id"`
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
	Label  string  `json:"label"`
}

type Stats struct {
	TotalNodes int            `json:"total_nodes"`
	TotalEdges int            `json:"total_edges"`
	Directed   bool           `json:"directed"`
	Weighted   bool           `json:"weighted"`
	Loops      int            `json:"loops"`
	InDegree   map[string]int `json:"in_degree,omitempty"`
	OutDegree  map[string]int `json:"out_degree,omitempty"`
}
