// Package store provides an interface for order storage operations.
package store

import "context"

// OrderProduct is a product line of an order.
type OrderProduct struct {
	ID       int64
	Name     string
	Quantity int64
}

// Order represents an order entity in the store.
type Order struct {
	ID         int64
	CustomerID int64
	Products   []OrderProduct
}

// OrderStore is an interface for order storage operations. Orders are read-only.
type OrderStore interface {
	// FindAll returns all orders in insertion order.
	// Returns an empty slice if no orders exist.
	FindAll(ctx context.Context) ([]Order, error)

	// FindByID retrieves the first order with the given ID.
	// Returns ErrOrderNotFound if no order exists with the given ID.
	FindByID(ctx context.Context, id int64) (*Order, error)
}
