// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"github.com/rs/zerolog"

	"github.com/graphsupply/core/internal/adjacency"
	"github.com/graphsupply/core/internal/config"
)

// Directory names below the graphs directory.
const (
	OriginalsDir = "andy-json-originals"
	SimpleDir    = "adjacency-simple"
	WeightedDir  = "adjacency-weighted"

	// virtualEntry is listed at the root although no directory backs it.
	virtualEntry = "andy-json"
)

// lastGraphKey is the session key under which the last generated graph lives.
const lastGraphKey = "last_graph"

// Handler serves the graph endpoints. It is safe for concurrent use.
type Handler struct {
	public    config.PublicConfig
	storage   config.StorageConfig
	generator *adjacency.Generator
	logger    zerolog.Logger
}

func New(cfg *config.Config, generator *adjacency.Generator, logger zerolog.Logger) *Handler {
	if generator == nil {
		generator = adjacency.NewGenerator()
	}
	return &Handler{
		public:    cfg.Public,
		storage:   cfg.Storage,
		generator: generator,
		logger:    logger.With().Str("component", "handlers").Logger(),
	}
}
