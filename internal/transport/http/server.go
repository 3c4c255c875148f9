package http

import (
	"bufio"
	"context"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"recall/internal/app"
	"recall/internal/config"
	"recall/internal/transport/ws"
)

// Server represents the HTTP server
type Server struct {
	server    *http.Server
	hub       *app.DrillHub
	config    *config.Config
	logger    *slog.Logger
	webFS     fs.FS
	validator *validator.Validate
}

// NewServer creates a new HTTP server. webFS holds index.html and static/.
func NewServer(cfg *config.Config, hub *app.DrillHub, logger *slog.Logger, webFS fs.FS) *Server {
	s := &Server{
		hub:       hub,
		config:    cfg,
		logger:    logger,
		webFS:     webFS,
		validator: validator.New(),
	}

	s.server = &http.Server{
		Addr:         cfg.GetAddr(),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler builds the router with all routes and middleware
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.middleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/drills", s.handleCreateDrill)
		r.Route("/drills/{drillID}", func(r chi.Router) {
			r.Get("/", s.handleGetDrill)
			r.Delete("/", s.handleDeleteDrill)
			r.Put("/text", s.handleSetText)
			r.Put("/count", s.handleSetCount)
			r.Post("/start", s.handleStart)
			r.Post("/hide", s.handleHide)
			r.Post("/reset", s.handleReset)
		})
		r.Get("/sample", s.handleSample)
		r.Get("/health", s.handleHealth)
		r.Get("/stats", s.handleStats)
	})

	// WebSocket
	r.Method(http.MethodGet, "/ws", ws.NewHandler(s.hub, s.logger, s.config.Drill.MaxTextBytes))

	// Static files and SPA
	r.Get("/static/*", s.handleStatic)
	r.Get("/*", s.handleSPA)

	return r
}

// middleware adds CORS headers and request logging
func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Add CORS headers
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		// Wrap response writer to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		// Log request (skip static files in production)
		if s.config.IsDevelopment() || !isStaticRequest(r.URL.Path) {
			s.logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration", time.Since(start),
				"requestID", middleware.GetReqID(r.Context()),
			)
		}
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("server starting", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.server.Shutdown(ctx)
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Hijack implements http.Hijacker for WebSocket support
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

// Flush implements http.Flusher
func (rw *responseWriter) Flush() {
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// isStaticRequest checks if the request is for a static file
func isStaticRequest(path string) bool {
	return strings.HasPrefix(path, "/static/")
}
