// Package parser provides utilities for parsing and transforming adjacency
// data. It reads the supported file formats into validated matrices and
// writes matrices back out for download.
package parser

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/graphsupply/core/internal/adjacency"
	"github.com/graphsupply/core/internal/models"
)

const sheetName = "matrix"

// ParseSheet reads the first worksheet of an XLSX workbook as a matrix.
// Blank cells count as zero.
func ParseSheet(r io.Reader) (models.Matrix, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening XLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no worksheet found in XLSX")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX")
	}

	// Trailing blank cells are dropped by GetRows.
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		for j, cell := range row {
			if cell == "" {
				row[j] = "0"
			}
		}
		rows[i] = row
	}

	raw, err := numericRows(rows)
	if err != nil {
		return nil, err
	}
	return adjacency.ToMatrix(raw)
}

// WriteSheet writes m as a single-sheet XLSX workbook, one matrix row per
// spreadsheet row.
func WriteSheet(w io.Writer, m models.Matrix) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for i, row := range m {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing XLSX: %w", err)
	}
	return nil
}
