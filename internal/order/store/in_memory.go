package store

import (
	"context"
	"sync"

	ordererrors "github.com/abgdnv/coffeeshop/internal/order/errors"
)

type inMemory struct {
	mu     sync.RWMutex
	orders []Order
}

// NewInMemoryStore creates an OrderStore holding a deep copy of seed.
func NewInMemoryStore(seed ...Order) OrderStore {
	orders := make([]Order, len(seed))
	for i, o := range seed {
		orders[i] = clone(o)
	}
	return &inMemory{orders: orders}
}

// SeedOrders returns the orders the distributors service starts with.
func SeedOrders() []Order {
	return []Order{
		{ID: 1, CustomerID: 1, Products: []OrderProduct{{ID: 1, Name: "Coffee A", Quantity: 2}}},
		{ID: 2, CustomerID: 2, Products: []OrderProduct{{ID: 2, Name: "Coffee B", Quantity: 1}}},
	}
}

func (s *inMemory) FindAll(_ context.Context) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Order, len(s.orders))
	for i, o := range s.orders {
		list[i] = clone(o)
	}
	return list, nil
}

func (s *inMemory) FindByID(_ context.Context, id int64) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			found := clone(o)
			return &found, nil
		}
	}
	return nil, ordererrors.ErrOrderNotFound
}

// clone copies the product lines so callers never share them with the store.
func clone(o Order) Order {
	products := make([]OrderProduct, len(o.Products))
	copy(products, o.Products)
	o.Products = products
	return o
}
