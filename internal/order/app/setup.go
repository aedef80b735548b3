// Package app contains the application setup for the distributors service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/coffeeshop/internal/order/config"
	"github.com/abgdnv/coffeeshop/internal/order/service"
	"github.com/abgdnv/coffeeshop/internal/order/store"
	"github.com/abgdnv/coffeeshop/internal/order/transport/rest"
	"github.com/abgdnv/coffeeshop/pkg/apidoc"
	"github.com/abgdnv/coffeeshop/pkg/auth"
	"github.com/abgdnv/coffeeshop/pkg/metrics"
	"github.com/abgdnv/coffeeshop/pkg/server"
	"github.com/go-chi/chi/v5"
)

const ServiceName = "distributors"

// APIKeys lists one key per distributor.
var APIKeys = []string{"distributor_1_key", "distributor_2_key"}

type Dependencies struct {
	OrderService service.OrderService
	Verifier     auth.Verifier
	// Metrics is nil when metrics are disabled.
	Metrics     *metrics.HTTPMetrics
	MetricsPath string
	Logger      *slog.Logger
}

func SetupDependencies(logger *slog.Logger, cfg config.Config) *Dependencies {
	deps := &Dependencies{
		OrderService: service.NewService(store.NewInMemoryStore(store.SeedOrders()...)),
		Verifier:     auth.NewKeySet(APIKeys...),
		Logger:       logger,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.NewHTTPMetrics(ServiceName)
		deps.MetricsPath = cfg.Metrics.Path
	}
	return deps
}

// SetupHttpHandler initializes the router with all routes and middleware of the distributors service.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	var mux *chi.Mux
	if deps.Metrics != nil {
		mux = server.NewChiRouter(deps.Logger, deps.Metrics.Middleware)
	} else {
		mux = server.NewChiRouter(deps.Logger)
	}

	rest.NewHandler(deps.OrderService, deps.Verifier, deps.Logger).RegisterRoutes(mux)
	apidoc.Register(mux, apidoc.New(apidoc.Info{
		Title:       "Distributors API",
		Description: "Read access to customer orders",
		Version:     "1.0.0",
	}, rest.DocRoutes()), deps.Logger)
	if deps.Metrics != nil {
		mux.Method(http.MethodGet, deps.MetricsPath, deps.Metrics.Handler())
	}
	return mux
}

// SetupHttpServer creates and configures an HTTP server for the distributors service.
func SetupHttpServer(deps *Dependencies, cfg config.Config) *http.Server {
	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}
	return server.NewHTTPServer(ServiceName, httpCfg, SetupHttpHandler(deps))
}
