package adjacency

import (
	"fmt"
	"strconv"

	"github.com/graphsupply/core/internal/models"
)

// SymmetricMessage is reported when no asymmetric pair was found.
const SymmetricMessage = "edge count halved because matrix is symmetric"

// Analyze counts the edges of m and decides whether it is directed by
// comparing every off-diagonal pair (i,j), i<j, in ascending order.
//
// Both cells of a pair are counted on their own, so a symmetric matrix counts
// every edge twice and the total is halved at the end. When several pairs
// differ, the message names the last one scanned. Diagonal cells are never
// inspected. m should have passed ValidateSquareNumeric; short rows read as
// zero.
func Analyze(m models.Matrix) models.EdgeStatistics {
	var stats models.EdgeStatistics

	n := len(m)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			forward, backward := at(m, i, j), at(m, j, i)
			if forward != 0 {
				stats.Count++
			}
			if backward != 0 {
				stats.Count++
			}
			if forward != backward {
				stats.Directed = true
				stats.Message = fmt.Sprintf("directed because matrix[%d][%d]=%s but matrix[%d][%d]=%s",
					i, j, FormatEntry(forward), j, i, FormatEntry(backward))
			}
		}
	}

	if !stats.Directed {
		stats.Count /= 2
		stats.Message = SymmetricMessage
	}

	return stats
}

// FormatEntry renders a matrix value the shortest way, so integral weights
// print without a fraction.
func FormatEntry(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func at(m models.Matrix, i, j int) float64 {
	if i >= len(m) || j >= len(m[i]) {
		return 0
	}
	return m[i][j]
}
