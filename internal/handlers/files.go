// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gorilla/mux"

	"github.com/graphsupply/core/internal/adjacency"
	"github.com/graphsupply/core/internal/models"
	"github.com/graphsupply/core/internal/parser"
)

var errUnsafeFilename = errors.New("invalid filename")

// weightedExtensions are the file types served from the weighted directory.
var weightedExtensions = map[string]bool{
	".json": true,
	".csv":  true,
	".xlsx": true,
}

// RootHandler lists the graph directories plus the virtual entry.
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(h.storage.GraphsDir)
	if err != nil {
		h.logger.Error().Err(err).Str("dir", h.storage.GraphsDir).Msg("Error reading directories")
		writeError(w, http.StatusInternalServerError, "Failed to read directories: "+err.Error())
		return
	}

	dirs := []string{h.public.URL(virtualEntry)}
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, h.public.URL(entry.Name()))
		}
	}
	sortFold(dirs)

	writeJSON(w, r, http.StatusOK, dirs)
}

// ListOriginals lists the raw JSON documents.
func (h *Handler) ListOriginals(w http.ResponseWriter, r *http.Request) {
	h.listFiles(w, r, OriginalsDir, nil)
}

// ListSimple lists the plain adjacency files.
func (h *Handler) ListSimple(w http.ResponseWriter, r *http.Request) {
	h.listFiles(w, r, SimpleDir, nil)
}

// ListWeighted lists the weighted adjacency files in a supported format.
func (h *Handler) ListWeighted(w http.ResponseWriter, r *http.Request) {
	h.listFiles(w, r, WeightedDir, func(name string) bool {
		return weightedExtensions[strings.ToLower(filepath.Ext(name))]
	})
}

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request, dir string, keep func(string) bool) {
	entries, err := os.ReadDir(filepath.Join(h.storage.GraphsDir, dir))
	if err != nil {
		h.logger.Error().Err(err).Str("dir", dir).Msg("Error reading directories")
		writeError(w, http.StatusInternalServerError, "Failed to read directories: "+err.Error())
		return
	}

	files := []string{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if keep != nil && !keep(entry.Name()) {
			continue
		}
		files = append(files, h.public.URL(dir, entry.Name()))
	}
	sortFold(files)

	writeJSON(w, r, http.StatusOK, files)
}

// OriginalHandler passes a raw JSON document through unchanged.
func (h *Handler) OriginalHandler(w http.ResponseWriter, r *http.Request) {
	data, ok := h.readFile(w, r, OriginalsDir)
	if !ok {
		return
	}

	if !json.Valid(data) {
		writeError(w, http.StatusInternalServerError, "Failed to read file: invalid JSON document")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(bytes.TrimSpace(data))
}

// SimpleHandler serves a plain adjacency file as a matrix document.
func (h *Handler) SimpleHandler(w http.ResponseWriter, r *http.Request) {
	data, ok := h.readFile(w, r, SimpleDir)
	if !ok {
		return
	}

	m, err := parser.ParseSimple(data)
	if err != nil {
		h.fileError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.MatrixDocument{
		Lines:   len(m),
		Columns: len(m),
		Matrix:  m,
	})
}

// WeightedHandler serves a weighted adjacency file together with its edge
// statistics.
func (h *Handler) WeightedHandler(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.loadWeighted(w, r)
	if !ok {
		return
	}

	stats := adjacency.Analyze(doc.Matrix)
	writeJSON(w, r, http.StatusOK, models.AnalyzedDocument{
		Lines:    len(doc.Matrix),
		Columns:  len(doc.Matrix),
		Nodes:    doc.Nodes,
		Edges:    stats.Count,
		Directed: stats.Directed,
		Message:  stats.Message,
		Matrix:   doc.Matrix,
	})
}

// WeightedGraphHandler serves a weighted adjacency file as a drawable graph.
// Asymmetric matrices are drawn directed.
func (h *Handler) WeightedGraphHandler(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.loadWeighted(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, parser.BuildGraph(doc.Matrix, !adjacency.Symmetric(doc.Matrix)))
}

func (h *Handler) loadWeighted(w http.ResponseWriter, r *http.Request) (*parser.Document, bool) {
	filename := mux.Vars(r)["filename"]
	ext := strings.ToLower(filepath.Ext(filename))
	if !weightedExtensions[ext] {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported file type %q", ext))
		return nil, false
	}

	data, ok := h.readFile(w, r, WeightedDir)
	if !ok {
		return nil, false
	}

	var (
		doc *parser.Document
		err error
	)
	switch ext {
	case ".json":
		doc, err = parser.ParseWeighted(data)
	case ".csv":
		var m models.Matrix
		m, err = parser.ParseSimple(data)
		doc = &parser.Document{Matrix: m}
	case ".xlsx":
		var m models.Matrix
		m, err = parser.ParseSheet(bytes.NewReader(data))
		doc = &parser.Document{Matrix: m}
	}
	if err != nil {
		h.fileError(w, r, err)
		return nil, false
	}

	return doc, true
}

// readFile loads {filename} from dir. On failure it has already answered.
func (h *Handler) readFile(w http.ResponseWriter, r *http.Request, dir string) ([]byte, bool) {
	filename, err := safeFilename(mux.Vars(r)["filename"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	path := filepath.Join(h.storage.GraphsDir, dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		h.logger.Error().Err(err).Str("path", path).Msg("Error reading file")
		status := http.StatusInternalServerError
		if errors.Is(err, fs.ErrNotExist) {
			status = http.StatusNotFound
		}
		writeError(w, status, "Failed to read file: "+err.Error())
		return nil, false
	}

	return data, true
}

func (h *Handler) fileError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("Error parsing file")
	writeError(w, http.StatusInternalServerError, "Failed to read file: "+err.Error())
}

// safeFilename rejects names that could leave the served directory.
func safeFilename(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w %q", errUnsafeFilename, name)
	}
	return name, nil
}

func sortFold(values []string) {
	sort.SliceStable(values, func(i, j int) bool {
		return strings.ToLower(values[i]) < strings.ToLower(values[j])
	})
}
