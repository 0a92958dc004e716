package parser

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphsupply/core/internal/models"
)

func TestWriteSimple(t *testing.T) {
	t.Run("writes one row per line", func(t *testing.T) {
		var buf bytes.Buffer

		err := WriteSimple(&buf, models.Matrix{{0, 1}, {3.5, 0}})

		require.NoError(t, err)
		assert.Equal(t, "0;1\n3.5;0\n", buf.String())
	})

	t.Run("output reads back unchanged", func(t *testing.T) {
		m := models.Matrix{{0, 4, 1}, {4, 0, 0}, {1, 0, 2}}
		var buf bytes.Buffer
		require.NoError(t, WriteSimple(&buf, m))

		back, err := ParseSimple(buf.Bytes())

		require.NoError(t, err)
		assert.Equal(t, m, back)
	})

	t.Run("empty matrix writes nothing", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, WriteSimple(&buf, nil))
		assert.Empty(t, buf.String())
	})
}

func TestWriteJSON(t *testing.T) {
	t.Run("writes indented array of arrays", func(t *testing.T) {
		var buf bytes.Buffer

		err := WriteJSON(&buf, models.Matrix{{0, 1}, {1, 0}})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "[\n  [\n    0,\n    1\n  ],")

		var decoded [][]float64
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, decoded)
	})

	t.Run("nil matrix is an empty array", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, WriteJSON(&buf, nil))
		assert.Equal(t, "[]\n", buf.String())
	})
}
