// Package adjacency holds the adjacency matrix core: validation of untrusted
// matrices, edge statistics and random matrix generation.
package adjacency

import (
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/graphsupply/core/internal/models"
)

// Zero returns an n×n matrix of zeros.
func Zero(n int) models.Matrix {
	m := make(models.Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

// CountNonZero returns the number of cells holding an edge, diagonal
// included.
func CountNonZero(m models.Matrix) int {
	count := 0
	for _, row := range m {
		for _, v := range row {
			if v != 0 {
				count++
			}
		}
	}
	return count
}

// Dense copies a square matrix into a gonum dense matrix. It returns nil for
// an empty matrix.
func Dense(m models.Matrix) *mat.Dense {
	n := len(m)
	if n == 0 {
		return nil
	}
	data := make([]float64, 0, n*n)
	for _, row := range m {
		data = append(data, row...)
	}
	return mat.NewDense(n, n, data)
}

// Symmetric reports whether m equals its transpose.
func Symmetric(m models.Matrix) bool {
	d := Dense(m)
	if d == nil {
		return true
	}
	return mat.Equal(d, d.T())
}

// NodeNames labels n nodes "A".."Z", or "1".."n" once there are more nodes
// than letters.
func NodeNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		if n > 26 {
			names[i] = strconv.Itoa(i + 1)
		} else {
			names[i] = string(rune('A' + i))
		}
	}
	return names
}
