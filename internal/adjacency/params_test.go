package adjacency

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphsupply/core/internal/models"
)

func TestParseParameters(t *testing.T) {
	t.Run("defaults when nothing is given", func(t *testing.T) {
		p, err := ParseParameters(nil)

		require.NoError(t, err)
		assert.Equal(t, models.GenerationParameters{Nodes: 10, Density: 50}, p)
	})

	t.Run("defaults for null and empty values", func(t *testing.T) {
		p, err := ParseParameters(map[string]any{"nodes": nil, "density": "  "})

		require.NoError(t, err)
		assert.Equal(t, DefaultParameters(), p)
	})

	t.Run("reads JSON numbers and booleans", func(t *testing.T) {
		p, err := ParseParameters(map[string]any{
			"nodes":    42.0,
			"density":  80.0,
			"directed": true,
			"weighted": true,
			"loops":    false,
		})

		require.NoError(t, err)
		assert.Equal(t, models.GenerationParameters{
			Nodes: 42, Density: 80, Directed: true, Weighted: true,
		}, p)
	})

	t.Run("reads numeric strings", func(t *testing.T) {
		p, err := ParseParameters(map[string]any{"nodes": "7", "density": "12.5"})

		require.NoError(t, err)
		assert.Equal(t, 7, p.Nodes)
		assert.Equal(t, 12.5, p.Density)
	})

	t.Run("reads json.Number", func(t *testing.T) {
		p, err := ParseParameters(map[string]any{"nodes": json.Number("3")})

		require.NoError(t, err)
		assert.Equal(t, 3, p.Nodes)
	})

	t.Run("explicit zero density is kept", func(t *testing.T) {
		p, err := ParseParameters(map[string]any{"density": 0.0})

		require.NoError(t, err)
		assert.Equal(t, 0.0, p.Density)
	})

	t.Run("explicit zero nodes is out of range", func(t *testing.T) {
		_, err := ParseParameters(map[string]any{"nodes": 0.0})

		assert.ErrorIs(t, err, ErrNodesOutOfRange)
	})

	t.Run("range errors are not clamped", func(t *testing.T) {
		cases := []map[string]any{
			{"nodes": 1.0},
			{"nodes": "201"},
			{"nodes": 1e300},
		}
		for _, raw := range cases {
			_, err := ParseParameters(raw)
			assert.ErrorIs(t, err, ErrNodesOutOfRange, "%v", raw)
		}

		for _, raw := range []map[string]any{{"density": -1.0}, {"density": "101"}} {
			_, err := ParseParameters(raw)
			assert.ErrorIs(t, err, ErrDensityOutOfRange, "%v", raw)
		}
	})

	t.Run("range error message names the bounds", func(t *testing.T) {
		_, err := ParseParameters(map[string]any{"density": 150.0})

		require.Error(t, err)
		assert.Equal(t, "density must be between 0 and 100 (got 150)", err.Error())
	})

	t.Run("rejects non-numeric values", func(t *testing.T) {
		for _, raw := range []map[string]any{
			{"nodes": "ten"},
			{"density": "NaN"},
			{"density": true},
			{"nodes": []any{1.0}},
		} {
			_, err := ParseParameters(raw)
			assert.ErrorIs(t, err, ErrInvalidParameter, "%v", raw)
		}
	})

	t.Run("rejects fractional node count", func(t *testing.T) {
		_, err := ParseParameters(map[string]any{"nodes": 2.5})

		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{true, true},
		{false, false},
		{"", false},
		{"0", false},
		{"false", false},
		{"FALSE", false},
		{"off", false},
		{"no", false},
		{"true", true},
		{"1", true},
		{"on", true},
		{"yes", true},
		{0.0, false},
		{1.0, true},
		{-2, true},
		{json.Number("0"), false},
		{json.Number("1"), true},
		{[]any{}, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Truthy(tc.in), "Truthy(%#v)", tc.in)
	}
}
