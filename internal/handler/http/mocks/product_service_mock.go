package mocks

import (
	"context"
	"errors"

	"github.com/betselot-m/kindcart/internal/domain/entity"
	usecasecontract "github.com/betselot-m/kindcart/internal/usecase/contract"
)

// MockProductService is a mock implementation of the IProductService interface
type MockProductService struct {
	// Control mock behavior
	ShouldFailCreate bool
	ReturnNotFound   bool
	ShouldFailList   bool

	// Return values
	MockProduct entity.Product
}

// Ensure MockProductService implements the interface used by NewProductHandler
var _ usecasecontract.IProductService = (*MockProductService)(nil)

func NewMockProductService() *MockProductService {
	return &MockProductService{
		MockProduct: entity.Product{
			ID:        "mock-product-id",
			Name:      "Hand-knitted scarf",
			Price:     24.99,
			SellerID:  "mock-seller-id",
			LikeCount: 2,
			LikedBy:   []string{"u1", "u2"},
		},
	}
}

func (m *MockProductService) CreateProduct(ctx context.Context, input usecasecontract.CreateProductInput) (*entity.Product, error) {
	if m.ShouldFailCreate {
		return nil, errors.New("product creation failed")
	}
	product := m.MockProduct
	product.Name = input.Name
	product.Price = input.Price
	product.SellerID = input.SellerID
	return &product, nil
}

func (m *MockProductService) GetProductByID(ctx context.Context, productID string) (*entity.Product, error) {
	if m.ReturnNotFound {
		return nil, entity.ErrProductNotFound
	}
	return &m.MockProduct, nil
}

func (m *MockProductService) ListProducts(ctx context.Context, page, pageSize int) ([]*entity.Product, int64, error) {
	if m.ShouldFailList {
		return nil, 0, errors.New("listing failed")
	}
	return []*entity.Product{&m.MockProduct}, 1, nil
}
