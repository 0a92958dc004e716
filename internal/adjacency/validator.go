package adjacency

import (
	"encoding/json"
	"math"

	"github.com/graphsupply/core/internal/models"
)

// ValidateSquareNumeric reports whether m has exactly as many entries in
// every row as it has rows, and whether every entry is a number. On failure
// the diagnostic names the offending row. It never panics.
func ValidateSquareNumeric(m models.RawMatrix) (bool, string) {
	if err := checkSquareNumeric(m); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// ToMatrix validates m and converts it into a numeric matrix.
func ToMatrix(m models.RawMatrix) (models.Matrix, error) {
	if err := checkSquareNumeric(m); err != nil {
		return nil, err
	}

	out := make(models.Matrix, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j], _ = toFloat(v)
		}
	}
	return out, nil
}

// ValidateSquare checks the shape of an already numeric matrix.
func ValidateSquare(m models.Matrix) error {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return &ShapeError{Err: ErrNotSquare, Rows: n, Row: i, Columns: len(row)}
		}
	}
	return nil
}

func checkSquareNumeric(m models.RawMatrix) *ShapeError {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return &ShapeError{Err: ErrNotSquare, Rows: n, Row: i, Columns: len(row)}
		}
		for j, v := range row {
			if _, ok := toFloat(v); !ok {
				return &ShapeError{Err: ErrNotNumeric, Rows: n, Row: i, Columns: len(row), Column: j, Value: v}
			}
		}
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return math.NaN(), false
		}
		return f, true
	default:
		return 0, false
	}
}
