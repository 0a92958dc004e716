// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
)

// AppHandler serves the browser front end.
func (h *Handler) AppHandler(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.storage.StaticDir, "index.html")
	page, err := os.ReadFile(path)
	if err != nil {
		h.logger.Error().Err(err).Str("path", path).Msg("Error reading index page")
		writeError(w, http.StatusNotFound, "Front end not available")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

// StaticHandler serves {path} from the static directory.
func (h *Handler) StaticHandler(w http.ResponseWriter, r *http.Request) {
	req := r.Clone(r.Context())
	req.URL.Path = "/" + mux.Vars(r)["path"]
	req.URL.RawPath = ""
	http.FileServer(http.Dir(h.storage.StaticDir)).ServeHTTP(w, req)
}
