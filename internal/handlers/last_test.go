// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphsupply/core/internal/models"
	"github.com/graphsupply/core/internal/parser"
	"github.com/graphsupply/core/internal/session"
)

func TestLastHandlers(t *testing.T) {
	full := models.Matrix{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}

	t.Run("every endpoint returns 404 before a graph exists", func(t *testing.T) {
		srv := newTestServer(t, "/")

		for _, target := range []string{"/last", "/last/json", "/last/csv", "/last/xlsx", "/last/graph"} {
			w := srv.do(t, http.MethodGet, target, nil)

			assert.Equal(t, http.StatusNotFound, w.Code, target)
			assert.Equal(t, "No graph generated yet", decodeError(t, w))
		}
	})

	srv := newTestServer(t, "/")
	generated := srv.do(t, http.MethodGet, "/random?nodes=3&density=100", nil)
	require.Equal(t, http.StatusOK, generated.Code)
	require.NotNil(t, srv.cookie)

	t.Run("returns the last generated graph", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/last", nil)

		require.Equal(t, http.StatusOK, w.Code)
		result := decodeResult(t, w)
		assert.Equal(t, full, result.Matrix)
		assert.Equal(t, float64(3), result.Metadata.Edges)
	})

	t.Run("downloads JSON", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/last/json", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="graph.json"`, w.Header().Get("Content-Disposition"))

		var m models.Matrix
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
		assert.Equal(t, full, m)
		assert.Contains(t, w.Body.String(), "\n  [")
	})

	t.Run("downloads semicolon rows", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/last/csv", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, contentTypeCSV, w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="graph.csv"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "0;1;1\n1;0;1\n1;1;0\n", w.Body.String())
	})

	t.Run("downloads a workbook", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/last/xlsx", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, contentTypeXLSX, w.Header().Get("Content-Type"))

		m, err := parser.ParseSheet(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, full, m)
	})

	t.Run("draws the graph undirected", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/last/graph", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var graph models.Graph
		require.NoError(t, json.NewDecoder(w.Body).Decode(&graph))
		assert.Len(t, graph.Nodes, 3)
		assert.Len(t, graph.Edges, 3)
		assert.Equal(t, "A|B", graph.Edges[0].ID)
		assert.False(t, graph.Stats.Directed)
	})

	t.Run("a newer graph replaces the last one", func(t *testing.T) {
		require.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, "/random?nodes=4&density=0", nil).Code)

		w := srv.do(t, http.MethodGet, "/last", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeResult(t, w).Matrix, 4)
	})

	t.Run("sessions do not share graphs", func(t *testing.T) {
		other := &testServer{handler: srv.handler}

		w := other.do(t, http.MethodGet, "/last", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("request without session returns 404", func(t *testing.T) {
		h := &Handler{}
		w := httptest.NewRecorder()

		h.LastHandler(w, httptest.NewRequest(http.MethodGet, "/last", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ignores foreign values in the slot", func(t *testing.T) {
		store := session.NewStore(0)
		slot := store.Create()
		slot.Set(lastGraphKey, "not a graph")

		req := httptest.NewRequest(http.MethodGet, "/last", nil)
		req = req.WithContext(session.NewContext(req.Context(), slot))
		w := httptest.NewRecorder()

		(&Handler{}).LastHandler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
