// Package web serves the MCP SSE endpoint, a health check, and saved
// screenshots over HTTP.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/1broseidon/winshot/internal/mcp"
)

// Server wraps an http.Server around an MCP server instance.
type Server struct {
	httpServer *http.Server
}

// NewServer builds the HTTP server for the given bind address.
// Routes: MCP over SSE at /, GET /health, and the screenshot
// directory under the store's URL prefix.
func NewServer(addr string, mcpServer *mcp.Server) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		records, err := mcpServer.Directory().ListChecked()
		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]any{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status":  "healthy",
			"windows": len(records),
		})
	})

	store := mcpServer.Store()
	prefix := store.URLPrefix() + "/"
	mux.Handle(prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(store.Dir()))))

	mux.Handle("/", mcpServer.SSEHandler())

	return &Server{
		httpServer: &http.Server{
			Addr:        addr,
			Handler:     mux,
			ReadTimeout: 30 * time.Second,
			// No WriteTimeout: SSE streams stay open indefinitely.
		},
	}
}

// Handler returns the route mux.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// ListenAndServe blocks until the context is canceled or the listener
// fails, then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}
