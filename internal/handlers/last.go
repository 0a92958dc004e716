// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/graphsupply/core/internal/models"
	"github.com/graphsupply/core/internal/parser"
	"github.com/graphsupply/core/internal/session"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// LastHandler returns the session's last generated graph.
func (h *Handler) LastHandler(w http.ResponseWriter, r *http.Request) {
	result, ok := lastGraph(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

// LastJSONHandler downloads the last matrix as a JSON array of arrays.
func (h *Handler) LastJSONHandler(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, "graph.json", "application/json", parser.WriteJSON)
}

// LastCSVHandler downloads the last matrix in the semicolon format.
func (h *Handler) LastCSVHandler(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, "graph.csv", contentTypeCSV, parser.WriteSimple)
}

// LastXLSXHandler downloads the last matrix as a workbook.
func (h *Handler) LastXLSXHandler(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, "graph.xlsx", contentTypeXLSX, parser.WriteSheet)
}

// LastGraphHandler returns the last matrix as a drawable graph.
func (h *Handler) LastGraphHandler(w http.ResponseWriter, r *http.Request) {
	result, ok := lastGraph(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, parser.BuildGraph(result.Matrix, result.Metadata.Params.Directed))
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request, filename, contentType string, write func(io.Writer, models.Matrix) error) {
	result, ok := lastGraph(w, r)
	if !ok {
		return
	}

	// Rendered into a buffer so a failure can still become an error response.
	var buf bytes.Buffer
	if err := write(&buf, result.Matrix); err != nil {
		h.logger.Error().Err(err).Str("file", filename).Msg("Error rendering download")
		writeError(w, http.StatusInternalServerError, "Failed to render "+filename)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func lastGraph(w http.ResponseWriter, r *http.Request) (*models.GraphResult, bool) {
	slot, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "No graph generated yet")
		return nil, false
	}

	value, ok := slot.Get(lastGraphKey)
	result, isGraph := value.(*models.GraphResult)
	if !ok || !isGraph || result == nil {
		writeError(w, http.StatusNotFound, "No graph generated yet")
		return nil, false
	}
	return result, true
}
