package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oakvale/homestead/internal/engine"
	"github.com/oakvale/homestead/internal/handler"
	"github.com/oakvale/homestead/internal/logger"
	"github.com/oakvale/homestead/internal/metrics"
	"github.com/oakvale/homestead/internal/storage"
)

const maxRequestBody = 1 << 20 // 1MB

type Server struct {
	httpServer *http.Server
	store      storage.Store
	game       engine.Service
}

// NewServer wires the HTTP surface around the game engine.
func NewServer(port int, game engine.Service, store storage.Store) *Server {
	r := NewRouter(game, store)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		store: store,
		game:  game,
	}
}

// NewRouter builds the chi router. Split out so handler tests can
// exercise the real routing table.
func NewRouter(game engine.Service, store storage.Store) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost first).
	r.Use(requestSizeLimit(maxRequestBody))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint for Prometheus scraping
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", handler.HandleGetState(game))

		r.Post("/activity", handler.HandlePerformActivity(game))
		r.Post("/activity/clear", handler.HandleClearActivity(game))

		r.Route("/plots/{plotID}", func(r chi.Router) {
			r.Post("/till", handler.HandleTillPlot(game))
			r.Post("/water", handler.HandleWaterPlot(game))
			r.Post("/plant", handler.HandlePlantSeed(game))
			r.Post("/harvest", handler.HandleHarvestPlot(game))
			r.Post("/clear", handler.HandleClearDeadPlot(game))
		})

		r.Post("/items/craft", handler.HandleCraftItem(game))
		r.Post("/items/sell", handler.HandleSellItem(game))
		r.Post("/items/use", handler.HandleUseItem(game))
		r.Post("/items/equip", handler.HandleEquipItem(game))
		r.Post("/items/unequip", handler.HandleUnequipItem(game))
		r.Post("/tools/{toolID}/upgrade", handler.HandleUpgradeTool(game))

		r.Post("/perks/select", handler.HandleSelectPerk(game))
		r.Post("/day/end", handler.HandleEndDay(game))
		r.Post("/notification/clear", handler.HandleClearNotification(game))

		r.Post("/save", handler.HandleSave(game))
		r.Post("/load", handler.HandleLoad(game))
	})

	return r
}

func requestSizeLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and scrapes only add noise.
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
