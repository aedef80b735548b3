package store

import (
	"context"
	"sync"

	producterrors "github.com/abgdnv/coffeeshop/internal/product/errors"
)

// inMemory implements ProductStore on top of an ordered slice guarded by a single lock.
type inMemory struct {
	mu       sync.RWMutex
	products []Product
}

// NewInMemoryStore creates a ProductStore holding a copy of seed.
func NewInMemoryStore(seed ...Product) ProductStore {
	products := make([]Product, len(seed))
	copy(products, seed)
	return &inMemory{products: products}
}

// SeedProducts returns the catalog the webshop starts with.
func SeedProducts() []Product {
	return []Product{
		{ID: 1, Name: "Coffee A", Price: 10.0},
		{ID: 2, Name: "Coffee B", Price: 12.0},
		{ID: 3, Name: "Coffee C", Price: 15.0},
	}
}

// FindAll returns a snapshot of all products.
func (s *inMemory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list, nil
}

// FindByID retrieves the first product with the given ID.
func (s *inMemory) FindByID(_ context.Context, id int64) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, producterrors.ErrProductNotFound
	}
	p := s.products[i]
	return &p, nil
}

// Create appends the product without checking for an existing ID.
func (s *inMemory) Create(_ context.Context, product Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, product)
	return &product, nil
}

// Update changes name and price of the first product with the given ID in place.
func (s *inMemory) Update(_ context.Context, id int64, name string, price float64) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, producterrors.ErrProductNotFound
	}
	s.products[i].Name = name
	s.products[i].Price = price
	p := s.products[i]
	return &p, nil
}

// DeleteByID removes all products with the given ID, keeping the order of the rest.
func (s *inMemory) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return producterrors.ErrProductNotFound
	}
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	// drop references past the new length
	clear(s.products[len(kept):])
	s.products = kept
	return nil
}

// indexOf must be called with the lock held.
func (s *inMemory) indexOf(id int64) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
