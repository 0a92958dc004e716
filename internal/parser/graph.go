// Package parser provides utilities for parsing and transforming adjacency
// data. It reads the supported file formats into validated matrices and
// writes matrices back out for download.
package parser

import (
	"gonum.org/v1/gonum/mat"

	"github.com/graphsupply/core/internal/adjacency"
	"github.com/graphsupply/core/internal/models"
)

// BuildGraph turns a square matrix into nodes and edges ready for drawing.
// Undirected graphs only contribute the upper triangle, diagonal included,
// so every edge stored twice in the matrix is drawn once.
func BuildGraph(m models.Matrix, directed bool) *models.Graph {
	graph := &models.Graph{
		Nodes: []models.Node{},
		Edges: []models.Edge{},
	}
	names := adjacency.NodeNames(len(m))
	edgeMap := make(map[string]bool)

	for _, name := range names {
		graph.Nodes = append(graph.Nodes, models.Node{ID: name, Label: name})
	}

	for row := range names {
		start := row
		if directed {
			start = 0
		}
		for col := start; col < len(names) && col < len(m[row]); col++ {
			weight := m[row][col]
			if weight == 0 {
				continue
			}

			edgeID := buildEdgeID(names[row], names[col], directed)
			if edgeMap[edgeID] {
				continue
			}
			edgeMap[edgeID] = true

			graph.Edges = append(graph.Edges, models.Edge{
				ID:     edgeID,
				Source: names[row],
				Target: names[col],
				Weight: weight,
				Label:  adjacency.FormatEntry(weight),
			})
		}
	}

	graph.Stats = buildStats(m, names, graph, directed)
	return graph
}

// buildEdgeID orders undirected endpoints so both directions share one ID.
func buildEdgeID(source, target string, directed bool) string {
	if !directed && target < source {
		source, target = target, source
	}
	return source + "|" + target
}

func buildStats(m models.Matrix, names []string, graph *models.Graph, directed bool) *models.Stats {
	stats := &models.Stats{
		TotalNodes: len(graph.Nodes),
		TotalEdges: len(graph.Edges),
		Directed:   directed,
	}

	for i, row := range m {
		for j, v := range row {
			if v != 0 && v != 1 {
				stats.Weighted = true
			}
			if i == j && v != 0 {
				stats.Loops++
			}
		}
	}

	in, out := degrees(m)
	if in == nil {
		return stats
	}
	stats.InDegree = make(map[string]int, len(names))
	stats.OutDegree = make(map[string]int, len(names))
	for i, name := range names {
		stats.InDegree[name] = int(in.AtVec(i))
		stats.OutDegree[name] = int(out.AtVec(i))
	}
	return stats
}

// degrees counts incoming and outgoing matrix cells per node.
func degrees(m models.Matrix) (in, out *mat.VecDense) {
	if adjacency.ValidateSquare(m) != nil {
		return nil, nil
	}
	dense := adjacency.Dense(m)
	if dense == nil {
		return nil, nil
	}
	n := len(m)

	var presence mat.Dense
	presence.Apply(func(_, _ int, v float64) float64 {
		if v != 0 {
			return 1
		}
		return 0
	}, dense)

	ones := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		ones.SetVec(i, 1)
	}

	out = mat.NewVecDense(n, nil)
	out.MulVec(&presence, ones)
	in = mat.NewVecDense(n, nil)
	in.MulVec(presence.T(), ones)
	return in, out
}
