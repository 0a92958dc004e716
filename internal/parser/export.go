// Package parser provides utilities for parsing and transforming adjacency
// data. It reads the supported file formats into validated matrices and
// writes matrices back out for download.
package parser

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/graphsupply/core/internal/adjacency"
	"github.com/graphsupply/core/internal/models"
)

// WriteSimple writes m in the plain adjacency format read by ParseSimple.
func WriteSimple(w io.Writer, m models.Matrix) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	for _, row := range m {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = adjacency.FormatEntry(v)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteJSON writes m as a pretty-printed array of arrays.
func WriteJSON(w io.Writer, m models.Matrix) error {
	if m == nil {
		m = models.Matrix{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(m)
}
