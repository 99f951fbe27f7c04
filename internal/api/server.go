package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"expvar"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ajitpratap0/patternkit/internal/catalog"
	"github.com/ajitpratap0/patternkit/internal/metrics"
	"github.com/ajitpratap0/patternkit/internal/prototype"
)

// Server is an HTTP API server that exposes the prototype catalog.
type Server struct {
	catalog   *catalog.Catalog
	logger    *slog.Logger
	authToken string // empty = no auth required
}

// NewServer creates a new Server with the given dependencies.
func NewServer(cat *catalog.Catalog, logger *slog.Logger, authToken string) *Server {
	return &Server{
		catalog:   cat,
		logger:    logger,
		authToken: authToken,
	}
}

// Handler returns an http.Handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health check and expvar counters: no auth required.
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /debug/vars", expvar.Handler())

	mux.HandleFunc("GET /v1/kinds", s.auth(s.handleKinds))
	mux.HandleFunc("GET /v1/prototypes/{kind}", s.auth(s.handleListTypes))
	mux.HandleFunc("POST /v1/prototypes/{kind}", s.auth(s.handleRegister))
	mux.HandleFunc("GET /v1/prototypes/{kind}/{type}", s.auth(s.handleGetPrototype))
	mux.HandleFunc("POST /v1/prototypes/{kind}/{type}/clone", s.auth(s.handleClone))
	mux.HandleFunc("GET /v1/stats", s.auth(s.handleStats))

	return mux
}

// --- middleware ---

// auth wraps a handler with Bearer token authentication when authToken is set.
func (s *Server) auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.authToken == "" {
			next(w, r)
			return
		}
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(s.authToken)) != 1 {
			s.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r)
	}
}

// --- handlers ---

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleKinds(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]catalog.Kind{"kinds": s.catalog.Kinds()})
}

// typesResponse is returned by GET /v1/prototypes/{kind}.
type typesResponse struct {
	Kind  catalog.Kind `json:"kind"`
	Types []string     `json:"types"`
}

func (s *Server) handleListTypes(w http.ResponseWriter, r *http.Request) {
	kind := catalog.Kind(r.PathValue("kind"))
	types, err := s.catalog.Types(kind)
	if err != nil {
		s.writeCatalogError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, typesResponse{Kind: kind, Types: types})
}

func (s *Server) handleGetPrototype(w http.ResponseWriter, r *http.Request) {
	kind := catalog.Kind(r.PathValue("kind"))
	p, err := s.catalog.Get(kind, r.PathValue("type"))
	if err != nil {
		s.writeCatalogError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleClone(w http.ResponseWriter, r *http.Request) {
	kind := catalog.Kind(r.PathValue("kind"))
	typ := r.PathValue("type")
	c, err := s.catalog.Clone(kind, typ)
	if err != nil {
		s.writeCatalogError(w, err)
		return
	}
	s.logger.Debug("prototype cloned", "kind", kind, "type", typ)
	s.writeJSON(w, http.StatusOK, c)
}

// registerResponse is returned by POST /v1/prototypes/{kind}.
type registerResponse struct {
	Kind       catalog.Kind `json:"kind"`
	Type       string       `json:"type"`
	Registered bool         `json:"registered"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	kind := catalog.Kind(r.PathValue("kind"))
	typ, err := s.catalog.Register(kind, body)
	if err != nil {
		s.writeCatalogError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, registerResponse{Kind: kind, Type: typ, Registered: true})
}

// statsResponse is returned by GET /v1/stats.
type statsResponse struct {
	Prototypes map[catalog.Kind]int `json:"prototypes"`
	Counters   map[string]int64     `json:"counters"`
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, statsResponse{
		Prototypes: s.catalog.Stats(),
		Counters:   metrics.Snapshot(),
	})
}

// --- helpers ---

// writeCatalogError maps catalog and registry errors to HTTP statuses.
func (s *Server) writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, prototype.ErrNotFound), errors.Is(err, catalog.ErrUnknownKind):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, catalog.ErrInvalidType), errors.Is(err, catalog.ErrInvalidPrototype):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("catalog operation failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// writeJSON encodes v as JSON and writes it to w with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(v); encErr != nil {
		s.logger.Error("failed to encode response", "error", encErr)
	}
}

// writeError writes a JSON error response.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// Shutdown gracefully shuts down an http.Server with the given timeout.
// This is a convenience helper used by the serve command.
func Shutdown(srv *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
