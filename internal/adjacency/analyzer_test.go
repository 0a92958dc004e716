package adjacency

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphsupply/core/internal/models"
)

func TestAnalyze(t *testing.T) {
	t.Run("symmetric pair counts one edge", func(t *testing.T) {
		stats := Analyze(models.Matrix{
			{0, 1},
			{1, 0},
		})

		assert.False(t, stats.Directed)
		assert.Equal(t, 1, stats.Count)
		assert.Equal(t, SymmetricMessage, stats.Message)
		assert.Contains(t, stats.Message, "symmetric")
	})

	t.Run("asymmetric pair is directed", func(t *testing.T) {
		stats := Analyze(models.Matrix{
			{0, 1},
			{0, 0},
		})

		assert.True(t, stats.Directed)
		assert.Equal(t, 1, stats.Count)
		assert.Contains(t, stats.Message, "[0][1]=1")
		assert.Contains(t, stats.Message, "[1][0]=0")
	})

	t.Run("last deviating pair wins the message", func(t *testing.T) {
		stats := Analyze(models.Matrix{
			{0, 1, 0},
			{0, 0, 4},
			{0, 2, 0},
		})

		assert.True(t, stats.Directed)
		assert.Equal(t, 3, stats.Count)
		assert.Equal(t, "directed because matrix[1][2]=4 but matrix[2][1]=2", stats.Message)
	})

	t.Run("both directions count independently when directed", func(t *testing.T) {
		stats := Analyze(models.Matrix{
			{0, 1, 1},
			{1, 0, 0},
			{0, 0, 0},
		})

		assert.True(t, stats.Directed)
		assert.Equal(t, 3, stats.Count)
	})

	t.Run("diagonal is ignored", func(t *testing.T) {
		stats := Analyze(models.Matrix{
			{5, 0},
			{0, 7},
		})

		assert.False(t, stats.Directed)
		assert.Equal(t, 0, stats.Count)
	})

	t.Run("weighted symmetric matrix", func(t *testing.T) {
		stats := Analyze(models.Matrix{
			{0, 3, 2},
			{3, 0, 0},
			{2, 0, 0},
		})

		assert.False(t, stats.Directed)
		assert.Equal(t, 2, stats.Count)
	})

	t.Run("fractional weights print without padding", func(t *testing.T) {
		stats := Analyze(models.Matrix{
			{0, 0.5},
			{1.25, 0},
		})

		assert.Equal(t, "directed because matrix[0][1]=0.5 but matrix[1][0]=1.25", stats.Message)
	})

	t.Run("empty matrix", func(t *testing.T) {
		stats := Analyze(models.Matrix{})

		assert.False(t, stats.Directed)
		assert.Equal(t, 0, stats.Count)
		assert.Equal(t, SymmetricMessage, stats.Message)
	})

	t.Run("short rows do not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			stats := Analyze(models.Matrix{
				{0, 1, 1},
				{1},
				{},
			})
			assert.True(t, stats.Directed)
		})
	})
}

func TestSymmetric(t *testing.T) {
	assert.True(t, Symmetric(models.Matrix{{0, 2}, {2, 0}}))
	assert.True(t, Symmetric(models.Matrix{{4, 0}, {0, 0}}))
	assert.False(t, Symmetric(models.Matrix{{0, 2}, {1, 0}}))
	assert.True(t, Symmetric(nil))
}

func TestDense(t *testing.T) {
	d := Dense(models.Matrix{{0, 1}, {2, 0}})

	rows, cols := d.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 1.0, d.At(0, 1))
	assert.Equal(t, 2.0, d.At(1, 0))
	assert.Nil(t, Dense(nil))
}

func TestNodeNames(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, NodeNames(3))

	names := NodeNames(26)
	assert.Equal(t, "Z", names[25])

	names = NodeNames(27)
	assert.Equal(t, "1", names[0])
	assert.Equal(t, "27", names[26])

	assert.Empty(t, NodeNames(0))
}
