// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Register mounts every endpoint on r. Paths are relative to r, so r may be
// a prefix subrouter.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/", h.RootHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", HealthHandler)

	r.HandleFunc("/app", h.AppHandler).Methods(http.MethodGet)
	r.HandleFunc("/static/{path:.*}", h.StaticHandler).Methods(http.MethodGet)

	r.HandleFunc("/random", h.RandomHandler).Methods(http.MethodGet, http.MethodPost)

	last := r.PathPrefix("/last").Subrouter()
	last.HandleFunc("", h.LastHandler).Methods(http.MethodGet)
	last.HandleFunc("/json", h.LastJSONHandler).Methods(http.MethodGet)
	last.HandleFunc("/csv", h.LastCSVHandler).Methods(http.MethodGet)
	last.HandleFunc("/xlsx", h.LastXLSXHandler).Methods(http.MethodGet)
	last.HandleFunc("/graph", h.LastGraphHandler).Methods(http.MethodGet)

	r.HandleFunc("/"+OriginalsDir, h.ListOriginals).Methods(http.MethodGet)
	r.HandleFunc("/"+OriginalsDir+"/{filename}", h.OriginalHandler).Methods(http.MethodGet)

	r.HandleFunc("/"+SimpleDir, h.ListSimple).Methods(http.MethodGet)
	r.HandleFunc("/"+SimpleDir+"/{filename}", h.SimpleHandler).Methods(http.MethodGet)

	r.HandleFunc("/"+WeightedDir, h.ListWeighted).Methods(http.MethodGet)
	r.HandleFunc("/"+WeightedDir+"/{filename}", h.WeightedHandler).Methods(http.MethodGet)
	r.HandleFunc("/"+WeightedDir+"/{filename}/graph", h.WeightedGraphHandler).Methods(http.MethodGet)
}

// Router builds the root router with every endpoint mounted below prefix.
func (h *Handler) Router(prefix string) *mux.Router {
	root := mux.NewRouter()
	root.NotFoundHandler = http.HandlerFunc(NotFound)
	root.MethodNotAllowedHandler = http.HandlerFunc(MethodNotAllowed)

	if prefix == "" || prefix == "/" {
		h.Register(root)
		return root
	}

	root.HandleFunc(prefix, h.RootHandler).Methods(http.MethodGet)
	sub := root.PathPrefix(prefix).Subrouter()
	sub.MethodNotAllowedHandler = http.HandlerFunc(MethodNotAllowed)
	h.Register(sub)
	return root
}
