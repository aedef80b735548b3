// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"errors"
	"log/slog"
	"net/http"

	producterrors "github.com/abgdnv/coffeeshop/internal/product/errors"
	"github.com/abgdnv/coffeeshop/internal/product/service"
	"github.com/abgdnv/coffeeshop/pkg/auth"
	"github.com/abgdnv/coffeeshop/pkg/schema"
	"github.com/abgdnv/coffeeshop/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	msgNotFound         = "Product not found"
	msgNameRequired     = "Invalid input, name is required"
	msgInvalidBody      = "Invalid request body"
	msgBodyTooLarge     = "Request body too large"
	ProductsPath        = "/products"
	ProductPathTemplate = "/products/{product_id}"
)

type Handler struct {
	service  service.ProductService
	verifier auth.Verifier
	schema   *schema.Validator
	logger   *slog.Logger
}

// NewHandler creates a new product Handler. Every route it registers is guarded by verifier.
func NewHandler(service service.ProductService, verifier auth.Verifier, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		verifier: verifier,
		schema:   schema.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the product service.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route(ProductsPath, func(r chi.Router) {
		r.Use(web.APIKeyAuth(h.verifier, h.logger))
		r.Get("/", h.FindAll)
		r.Post("/", h.Create)

		r.Route("/{id:[0-9]+}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// FindAll retrieves a list of all products.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	mLogger.DebugContext(r.Context(), "Received request to find all products")
	list, err := h.service.FindAll(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger, msgNotFound)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, producterrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, msgNotFound)
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "Name", found.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	data, ok := h.decodeValid(w, r, mLogger, service.CreateContract)
	if !ok {
		return
	}
	productCreateDto := service.ProductCreateDto{
		ID:    schema.Int(data, "id"),
		Name:  schema.Str(data, "name"),
		Price: schema.Float(data, "price"),
	}
	mLogger.DebugContext(r.Context(), "Received request to create product", "product", productCreateDto)

	newProduct, err := h.service.Create(r.Context(), productCreateDto)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating product", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create product")
		return
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", "ID", newProduct.ID, "Name", newProduct.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, newProduct)
}

// Update replaces name and price of a product. Payload errors win over an unknown ID.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger, msgNotFound)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to update product", "ID", id)
	data, ok := h.decodeValid(w, r, mLogger, service.UpdateContract)
	if !ok {
		return
	}
	productDTO := service.ProductUpdateDto{
		Name:  schema.Str(data, "name"),
		Price: schema.Float(data, "price"),
	}

	updated, err := h.service.Update(r.Context(), id, productDTO)
	if err != nil {
		switch {
		case errors.Is(err, producterrors.ErrInvalidInput):
			mLogger.WarnContext(r.Context(), "Rejected product update", "ID", id, "error", err)
			web.RespondError(w, mLogger, http.StatusBadRequest, msgNameRequired)
		case errors.Is(err, producterrors.ErrProductNotFound):
			mLogger.WarnContext(r.Context(), "Product not found for update", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, msgNotFound)
		default:
			mLogger.ErrorContext(r.Context(), "Error updating product", "ID", id, "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to update product")
		}
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteByID deletes every product with the given ID.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger, msgNotFound)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to delete product", "ID", id)
	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, producterrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for deletion", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, msgNotFound)
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// decodeValid decodes the body and checks it against contract. On failure the error response
// has already been written.
func (h *Handler) decodeValid(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, contract schema.Contract) (map[string]any, bool) {
	payload, err := web.DecodeJSON(w, r)
	if err != nil {
		mLogger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			web.RespondError(w, mLogger, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return nil, false
		}
		web.RespondError(w, mLogger, http.StatusBadRequest, msgInvalidBody)
		return nil, false
	}
	if errs := h.schema.Validate(contract, payload); errs != nil {
		mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errs)
		web.RespondJSON(w, mLogger, http.StatusBadRequest, errs)
		return nil, false
	}
	// Validate only passes JSON objects.
	return payload.(map[string]any), true
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
