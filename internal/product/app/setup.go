// Package app contains the application setup for the webshop service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/coffeeshop/internal/product/config"
	"github.com/abgdnv/coffeeshop/internal/product/service"
	"github.com/abgdnv/coffeeshop/internal/product/store"
	"github.com/abgdnv/coffeeshop/internal/product/transport/rest"
	"github.com/abgdnv/coffeeshop/pkg/apidoc"
	"github.com/abgdnv/coffeeshop/pkg/auth"
	"github.com/abgdnv/coffeeshop/pkg/metrics"
	"github.com/abgdnv/coffeeshop/pkg/server"
	"github.com/go-chi/chi/v5"
)

const (
	ServiceName = "webshop"
	// APIKey is the only key the webshop accepts.
	APIKey = "webshop_api_key"
)

type Dependencies struct {
	ProductService service.ProductService
	Verifier       auth.Verifier
	// Metrics is nil when metrics are disabled.
	Metrics     *metrics.HTTPMetrics
	MetricsPath string
	Logger      *slog.Logger
}

// SetupDependencies builds the service over a store seeded with the default catalog.
func SetupDependencies(logger *slog.Logger, cfg config.Config) *Dependencies {
	pService := service.NewService(store.NewInMemoryStore(store.SeedProducts()...))

	deps := &Dependencies{
		ProductService: pService,
		Verifier:       auth.NewKeySet(APIKey),
		Logger:         logger,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.NewHTTPMetrics(ServiceName)
		deps.MetricsPath = cfg.Metrics.Path
	}
	return deps
}

// SetupHttpHandler initializes the router with all routes and middleware of the webshop.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	var mux *chi.Mux
	if deps.Metrics != nil {
		mux = server.NewChiRouter(deps.Logger, deps.Metrics.Middleware)
	} else {
		mux = server.NewChiRouter(deps.Logger)
	}
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the webshop.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	productHandler := rest.NewHandler(deps.ProductService, deps.Verifier, deps.Logger)
	productHandler.RegisterRoutes(mux)

	doc := apidoc.New(apidoc.Info{
		Title:       "Webshop API",
		Description: "Coffee product catalog",
		Version:     "1.0.0",
	}, rest.DocRoutes())
	apidoc.Register(mux, doc, deps.Logger)

	if deps.Metrics != nil {
		mux.Method(http.MethodGet, deps.MetricsPath, deps.Metrics.Handler())
	}
}

// SetupHttpServer creates and configures an HTTP server for the webshop.
func SetupHttpServer(deps *Dependencies, cfg config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(ServiceName, httpCfg, mux)
}
