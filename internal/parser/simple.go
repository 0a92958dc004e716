// Package parser provides utilities for parsing and transforming adjacency
// data. It reads the supported file formats into validated matrices and
// writes matrices back out for download.
package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/graphsupply/core/internal/adjacency"
	"github.com/graphsupply/core/internal/models"
)

// ParseSimple reads the plain adjacency format: one matrix row per line,
// entries separated by semicolons. Blank lines are skipped.
func ParseSimple(data []byte) (models.Matrix, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty adjacency data")
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read adjacency rows: %w", err)
	}

	raw, err := numericRows(records)
	if err != nil {
		return nil, err
	}
	return adjacency.ToMatrix(raw)
}

func numericRows(records [][]string) (models.RawMatrix, error) {
	raw := make(models.RawMatrix, len(records))
	for i, record := range records {
		raw[i] = make([]any, len(record))
		for j, field := range record {
			value, err := parseNumber(field)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q on line %d", strings.TrimSpace(field), i)
			}
			raw[i][j] = value
		}
	}
	return raw, nil
}

func parseNumber(field string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(field), 64)
}
