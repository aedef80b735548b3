// Package service provides the implementation of order-related business logic.
package service

import (
	"context"
	"fmt"

	"github.com/abgdnv/coffeeshop/internal/order/store"
)

// OrderService defines the read operations distributors may perform on orders.
type OrderService interface {
	// FindAll returns all orders in insertion order.
	FindAll(ctx context.Context) ([]OrderDto, error)

	// FindProducts returns the product lines of the first order with the given ID.
	// Returns ErrOrderNotFound if no order exists with the given ID.
	FindProducts(ctx context.Context, orderID int64) ([]OrderProductDto, error)
}

// Service implements OrderService.
type Service struct {
	repository store.OrderStore
}

// NewService creates a new instance of OrderService with the provided repository.
func NewService(repo store.OrderStore) *Service {
	return &Service{repository: repo}
}

// OrderDto represents the data transfer object for an order.
type OrderDto struct {
	ID         int64             `json:"id"`
	CustomerID int64             `json:"customer_id"`
	Products   []OrderProductDto `json:"products"`
}

// OrderProductDto represents one product line of an order.
type OrderProductDto struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

func (s *Service) FindAll(ctx context.Context) ([]OrderDto, error) {
	orders, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	dtos := make([]OrderDto, len(orders))
	for i, o := range orders {
		dtos[i] = OrderDto{
			ID:         o.ID,
			CustomerID: o.CustomerID,
			Products:   toProductDtos(o.Products),
		}
	}
	return dtos, nil
}

func (s *Service) FindProducts(ctx context.Context, orderID int64) ([]OrderProductDto, error) {
	order, err := s.repository.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order by ID %d: %w", orderID, err)
	}
	return toProductDtos(order.Products), nil
}

// toProductDtos never returns nil, so an order without lines serializes as [].
func toProductDtos(products []store.OrderProduct) []OrderProductDto {
	dtos := make([]OrderProductDto, len(products))
	for i, p := range products {
		dtos[i] = OrderProductDto{ID: p.ID, Name: p.Name, Quantity: p.Quantity}
	}
	return dtos
}
