package service

import (
	"context"
	"errors"
	"testing"

	producterrors "github.com/abgdnv/coffeeshop/internal/product/errors"
	"github.com/abgdnv/coffeeshop/internal/product/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductStore is a mock implementation of the ProductStore interface
type mockProductStore struct {
	products    []store.Product
	product     store.Product
	error       error
	updateCalls int
	created     store.Product
}

func (m *mockProductStore) FindAll(_ context.Context) ([]store.Product, error) {
	return m.products, m.error
}

func (m *mockProductStore) FindByID(_ context.Context, _ int64) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

func (m *mockProductStore) Create(_ context.Context, p store.Product) (*store.Product, error) {
	m.created = p
	if m.error != nil {
		return nil, m.error
	}
	return &p, nil
}

func (m *mockProductStore) Update(_ context.Context, id int64, name string, price float64) (*store.Product, error) {
	m.updateCalls++
	if m.error != nil {
		return nil, m.error
	}
	return &store.Product{ID: id, Name: name, Price: price}, nil
}

func (m *mockProductStore) DeleteByID(_ context.Context, _ int64) error {
	return m.error
}

func Test_ProductService_FindAll(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expected    []ProductDto
		expectError error
	}{
		{
			name:      "Success - products found",
			mockStore: &mockProductStore{products: []store.Product{{ID: 1, Name: "Coffee A", Price: 10}, {ID: 2, Name: "Coffee B", Price: 12}}},
			expected:  []ProductDto{{ID: 1, Name: "Coffee A", Price: 10}, {ID: 2, Name: "Coffee B", Price: 12}},
		},
		{
			name:      "Success - no products",
			mockStore: &mockProductStore{products: []store.Product{}},
			expected:  []ProductDto{},
		},
		{
			name:        "Error - store error",
			mockStore:   &mockProductStore{error: ErrStoreError},
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			list, err := service.FindAll(context.Background())
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, list)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, list)
		})
	}
}

func Test_ProductService_FindByID(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expected    *ProductDto
		expectError error
	}{
		{
			name:      "Success - product found",
			mockStore: &mockProductStore{product: store.Product{ID: 5, Name: "Coffee D", Price: 9.5}},
			expected:  &ProductDto{ID: 5, Name: "Coffee D", Price: 9.5},
		},
		{
			name:        "Error - product not found",
			mockStore:   &mockProductStore{error: producterrors.ErrProductNotFound},
			expectError: producterrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			found, err := service.FindByID(context.Background(), 5)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_ProductService_Create(t *testing.T) {
	t.Run("Success - passes exactly the validated fields", func(t *testing.T) {
		// given
		mockStore := &mockProductStore{}
		service := NewService(mockStore)

		// when
		created, err := service.Create(context.Background(), ProductCreateDto{ID: 5, Name: "Coffee D", Price: 9.5})

		// then
		require.NoError(t, err)
		assert.Equal(t, &ProductDto{ID: 5, Name: "Coffee D", Price: 9.5}, created)
		assert.Equal(t, store.Product{ID: 5, Name: "Coffee D", Price: 9.5}, mockStore.created)
	})

	t.Run("Error - store error", func(t *testing.T) {
		ErrStoreError := errors.New("store error")
		service := NewService(&mockProductStore{error: ErrStoreError})

		created, err := service.Create(context.Background(), ProductCreateDto{ID: 5, Name: "Coffee D", Price: 9.5})

		assert.ErrorIs(t, err, ErrStoreError)
		assert.Nil(t, created)
	})
}

func Test_ProductService_Update(t *testing.T) {
	testCases := []struct {
		name                string
		mockStore           *mockProductStore
		input               ProductUpdateDto
		expected            *ProductDto
		expectError         error
		expectedUpdateCalls int
	}{
		{
			name:                "Success - product updated",
			mockStore:           &mockProductStore{},
			input:               ProductUpdateDto{Name: "Espresso", Price: 3.5},
			expected:            &ProductDto{ID: 1, Name: "Espresso", Price: 3.5},
			expectedUpdateCalls: 1,
		},
		{
			name:                "Error - empty name never reaches the store",
			mockStore:           &mockProductStore{error: producterrors.ErrProductNotFound},
			input:               ProductUpdateDto{Name: "", Price: 5},
			expectError:         producterrors.ErrInvalidInput,
			expectedUpdateCalls: 0,
		},
		{
			name:                "Error - product not found",
			mockStore:           &mockProductStore{error: producterrors.ErrProductNotFound},
			input:               ProductUpdateDto{Name: "X", Price: 1},
			expectError:         producterrors.ErrProductNotFound,
			expectedUpdateCalls: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			updated, err := service.Update(context.Background(), 1, tc.input)
			// then
			assert.Equal(t, tc.expectedUpdateCalls, tc.mockStore.updateCalls)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, updated)
		})
	}
}

func Test_ProductService_DeleteByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service := NewService(&mockProductStore{})

		assert.NoError(t, service.DeleteByID(context.Background(), 2))
	})

	t.Run("Error - product not found", func(t *testing.T) {
		service := NewService(&mockProductStore{error: producterrors.ErrProductNotFound})

		assert.ErrorIs(t, service.DeleteByID(context.Background(), 2), producterrors.ErrProductNotFound)
	})
}
