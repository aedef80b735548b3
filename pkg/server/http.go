package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/abgdnv/coffeeshop/pkg/web"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HTTPConfig has the configuration for the HTTP server.
type HTTPConfig struct {
	Port           int
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	ReadHeader     time.Duration
}

// NewHTTPServer creates and configures a new HTTP server instance. Every request is
// wrapped in an OpenTelemetry server span named after serviceName.
func NewHTTPServer(serviceName string, cfg HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           otelhttp.NewHandler(handler, serviceName),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ReadHeaderTimeout: cfg.ReadHeader,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
}

// NewChiRouter creates a new Chi router with a set of
// middleware for request ID injection, structured logging, and recovery.
// Extra middleware (metrics) runs after these and before routing.
func NewChiRouter(logger *slog.Logger, extra ...func(http.Handler) http.Handler) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(web.RequestIDInjector)
	mux.Use(web.StructuredLogger(logger))
	mux.Use(web.Recoverer(logger))
	mux.Use(extra...)
	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		web.RespondError(w, logger, http.StatusNotFound, "The requested URL was not found on the server.")
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		web.RespondError(w, logger, http.StatusMethodNotAllowed, "The method is not allowed for the requested URL.")
	})
	return mux
}
