// Package store provides an interface for product storage operations.
package store

import "context"

// Product represents a product entity in the store.
type Product struct {
	ID    int64
	Name  string
	Price float64
}

// ProductStore is an interface for product storage operations.
// IDs are assigned by the caller and are not required to be unique: lookups and updates
// act on the first record with a given ID in insertion order.
type ProductStore interface {
	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID retrieves the first product with the given ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// Create appends a product. Duplicate IDs are accepted.
	Create(ctx context.Context, product Product) (*Product, error)

	// Update replaces name and price of the first product with the given ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id int64, name string, price float64) (*Product, error)

	// DeleteByID removes every product with the given ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error
}
