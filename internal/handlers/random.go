// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/graphsupply/core/internal/adjacency"
	"github.com/graphsupply/core/internal/session"
)

// maxBodySize bounds the JSON body accepted by RandomHandler.
const maxBodySize = 1 << 20

// RandomHandler generates a random graph. GET reads the parameters from the
// query string, where a flag given without a value counts as set; POST reads
// a JSON object. The result becomes the session's last graph.
func (h *Handler) RandomHandler(w http.ResponseWriter, r *http.Request) {
	var (
		raw map[string]any
		err error
	)
	switch r.Method {
	case http.MethodGet:
		raw = queryParameters(r)
	case http.MethodPost:
		raw, err = bodyParameters(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
			return
		}
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	params, err := adjacency.ParseParameters(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.generator.Generate(params)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, adjacency.ErrNodesOutOfRange) || errors.Is(err, adjacency.ErrDensityOutOfRange) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	if slot, ok := session.FromContext(r.Context()); ok {
		slot.Set(lastGraphKey, result)
	}

	h.logger.Debug().
		Int("nodes", params.Nodes).
		Float64("density", params.Density).
		Bool("directed", params.Directed).
		Float64("edges", result.Metadata.Edges).
		Msg("Random graph generated")

	writeJSON(w, r, http.StatusOK, result)
}

func queryParameters(r *http.Request) map[string]any {
	raw := make(map[string]any)
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		value := values[0]
		if value == "" {
			value = "true"
		}
		raw[key] = value
	}
	return raw
}

func bodyParameters(r *http.Request) (map[string]any, error) {
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, err
	}

	raw := make(map[string]any)
	if len(bytes.TrimSpace(body)) == 0 {
		return raw, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
