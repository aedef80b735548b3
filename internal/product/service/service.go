// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"

	producterrors "github.com/abgdnv/coffeeshop/internal/product/errors"
	"github.com/abgdnv/coffeeshop/internal/product/store"
	"github.com/abgdnv/coffeeshop/pkg/schema"
)

// CreateContract is the field contract for new products. The ID is chosen by the caller.
var CreateContract = schema.Contract{
	{Name: "id", Type: schema.Integer, Required: true},
	{Name: "name", Type: schema.String, Required: true},
	{Name: "price", Type: schema.Number, Required: true},
}

// UpdateContract is the field contract for product updates. The ID comes from the path,
// an id in the body is ignored.
var UpdateContract = schema.Contract{
	{Name: "id", Type: schema.Integer, OutputOnly: true},
	{Name: "name", Type: schema.String, Required: true},
	{Name: "price", Type: schema.Number, Required: true},
}

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// FindByID retrieves a single product by its identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// Create adds a new product to the catalog.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update modifies name and price of an existing product.
	// Returns ErrInvalidInput for an empty name and ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id int64, product ProductUpdateDto) (*ProductDto, error)

	// DeleteByID removes every product with the given ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductCreateDto carries a validated create payload.
type ProductCreateDto struct {
	ID    int64
	Name  string
	Price float64
}

// ProductUpdateDto carries a validated update payload.
type ProductUpdateDto struct {
	Name  string
	Price float64
}

// FindAll retrieves all products and returns them as ProductDTOs.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))

	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}

	return productDTOs, nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}

	return toDto(product), nil
}

// Create appends a product built from exactly the validated fields.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	p, err := s.repository.Create(ctx, store.Product{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toDto(p), nil
}

// Update checks the name rule before looking the product up, so an invalid payload is
// reported even when the ID does not exist.
func (s *Service) Update(ctx context.Context, id int64, product ProductUpdateDto) (*ProductDto, error) {
	if product.Name == "" {
		return nil, fmt.Errorf("%w: name is required", producterrors.ErrInvalidInput)
	}
	updated, err := s.repository.Update(ctx, id, product.Name, product.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}

	return toDto(updated), nil
}

// DeleteByID deletes all products with the given ID.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}
	return nil
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
	}
}
