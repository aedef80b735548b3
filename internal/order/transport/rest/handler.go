// Package rest provides HTTP handlers for order-related operations.
package rest

import (
	"errors"
	"log/slog"
	"net/http"

	ordererrors "github.com/abgdnv/coffeeshop/internal/order/errors"
	"github.com/abgdnv/coffeeshop/internal/order/service"
	"github.com/abgdnv/coffeeshop/pkg/auth"
	"github.com/abgdnv/coffeeshop/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	msgNotFound               = "Order not found"
	OrdersPath                = "/orders"
	OrderProductsPathTemplate = "/orders/{order_id}/products"
)

type Handler struct {
	service  service.OrderService
	verifier auth.Verifier
	logger   *slog.Logger
}

// NewHandler creates a new order Handler. Every route it registers is guarded by verifier.
func NewHandler(service service.OrderService, verifier auth.Verifier, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		verifier: verifier,
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the distributors service.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route(OrdersPath, func(r chi.Router) {
		r.Use(web.APIKeyAuth(h.verifier, h.logger))
		r.Get("/", h.FindAll)
		r.Get("/{id:[0-9]+}/products", h.FindProducts)
	})

	r.Get("/healthz", h.HealthCheck)
}

// FindAll retrieves a list of all orders.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	mLogger.DebugContext(r.Context(), "Received request to find all orders")
	list, err := h.service.FindAll(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving order list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved order list", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindProducts retrieves the product lines of one order.
func (h *Handler) FindProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger, msgNotFound)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find order products", "ID", id)
	products, err := h.service.FindProducts(r.Context(), id)
	if err != nil {
		if errors.Is(err, ordererrors.ErrOrderNotFound) {
			mLogger.WarnContext(r.Context(), "Order not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, msgNotFound)
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving order products", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to retrieve order products")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, products)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
