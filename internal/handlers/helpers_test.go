// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/graphsupply/core/internal/adjacency"
	"github.com/graphsupply/core/internal/config"
	"github.com/graphsupply/core/internal/models"
	"github.com/graphsupply/core/internal/parser"
	"github.com/graphsupply/core/internal/session"
)

const testCookie = "graphsupply_session"

type testServer struct {
	handler http.Handler
	cfg     *config.Config
	cookie  *http.Cookie
}

// newTestServer serves a fresh graphs directory laid out like production.
func newTestServer(t *testing.T, prefix string) *testServer {
	t.Helper()

	root := t.TempDir()
	graphs := filepath.Join(root, "graphs")
	static := filepath.Join(root, "static")

	writeFile(t, filepath.Join(graphs, OriginalsDir, "petersen.json"), `{"name": "petersen", "nodes": [1, 2]}`)
	writeFile(t, filepath.Join(graphs, OriginalsDir, "broken.json"), `{"name": `)

	writeFile(t, filepath.Join(graphs, SimpleDir, "b-square.txt"), "0;1\n1;0\n")
	writeFile(t, filepath.Join(graphs, SimpleDir, "A-ragged.txt"), "0;1;1\n1;0\n")

	writeFile(t, filepath.Join(graphs, WeightedDir, "cycle.json"), `{"nodes": 3, "matrix": [[0,1,0],[0,0,1],[1,0,0]]}`)
	writeFile(t, filepath.Join(graphs, WeightedDir, "pair.csv"), "0;2\n2;0\n")
	writeFile(t, filepath.Join(graphs, WeightedDir, "notes.txt"), "not a matrix")
	writeFile(t, filepath.Join(graphs, WeightedDir, "strings.json"), `{"matrix": [[0,"x"],[1,0]]}`)
	writeSheetFile(t, filepath.Join(graphs, WeightedDir, "Triangle.xlsx"), models.Matrix{
		{0, 4, 4},
		{4, 0, 4},
		{4, 4, 0},
	})

	writeFile(t, filepath.Join(graphs, "README.md"), "graphs")
	writeFile(t, filepath.Join(static, "index.html"), "<html><body>graphsupply</body></html>")
	writeFile(t, filepath.Join(static, "app.js"), "console.log('graphsupply')")

	cfg := &config.Config{
		Public:  config.PublicConfig{BaseURL: "http://localhost:8080", Prefix: prefix},
		Storage: config.StorageConfig{GraphsDir: graphs, StaticDir: static},
	}

	h := New(cfg, adjacency.NewGenerator(adjacency.WithSeed(7)), zerolog.Nop())
	store := session.NewStore(time.Hour)

	return &testServer{
		handler: session.Middleware(store, testCookie)(h.Router(prefix)),
		cfg:     cfg,
	}
}

// do serves a request, keeping the session cookie across calls.
func (s *testServer) do(t *testing.T, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie {
			s.cookie = c
		}
	}
	return w
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func writeSheetFile(t *testing.T, path string, m models.Matrix) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, parser.WriteSheet(f, m))
}
