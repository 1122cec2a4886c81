// Package web serves the storybook site: the illustrated story pages
// and the browser chat UI. By default it serves an embedded site; a
// directory on disk can be served instead for local authoring.
package web

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"time"
)

//go:embed site
var siteFS embed.FS

// Server is the static site HTTP server.
type Server struct {
	httpServer *http.Server
}

// New creates a Server listening on addr. siteDir selects the files to
// serve; empty means the embedded site.
func New(addr, siteDir string) (*Server, error) {
	var files http.FileSystem
	if siteDir != "" {
		files = http.Dir(siteDir)
	} else {
		sub, err := fs.Sub(siteFS, "site")
		if err != nil {
			return nil, err
		}
		files = http.FS(sub)
	}

	mux := http.NewServeMux()
	mux.Handle("/", withHeaders(http.FileServer(files)))

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler returns the root handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe blocks serving requests until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// withHeaders adds the CORS and cache headers the chat UI expects.
// Caching is disabled so edits to the story pages show up on reload.
func withHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
