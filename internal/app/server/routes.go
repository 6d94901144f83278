package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/charmbracelet/log"
	"golang.org/x/net/netutil"

	"netsum/internal/auth"
	"netsum/internal/config"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Server is the summarization API around the pure core.
type Server struct {
	http     *http.Server
	listener net.Listener
}

func newRouter() http.Handler {
	router := http.NewServeMux()
	router.HandleFunc("GET /health", getHealth)
	router.HandleFunc("GET /version", getVersion)
	router.HandleFunc("POST /login", loginUser)
	router.Handle("POST /summarize", auth.RequireAuth(http.HandlerFunc(summarizeRoutes)))

	log.Debug("Routes opened")
	return enableCORS(router)
}

// New binds the API listener on the given port. The listener is capped
// at the configured connection limit.
func New(port int) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", port, err)
	}

	if maxConns := config.GetConfig().Server.MaxConnections; maxConns > 0 {
		listener = netutil.LimitListener(listener, maxConns)
	}

	return &Server{
		http:     &http.Server{Handler: newRouter()},
		listener: listener,
	}, nil
}

// Serve blocks until the listener fails or Shutdown is called.
func (s *Server) Serve() error {
	log.Info("Starting API server", "addr", s.listener.Addr().String())
	return s.http.Serve(s.listener)
}

// Shutdown drains in-flight requests and closes the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
