package usecasecontract

import (
	"context"

	"github.com/betselot-m/kindcart/internal/domain/entity"
)

// IProductService defines the catalogue operations exposed to the HTTP layer.
type IProductService interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	GetProductByID(ctx context.Context, productID string) (*entity.Product, error)
	ListProducts(ctx context.Context, page, pageSize int) ([]*entity.Product, int64, error)
}

// CreateProductInput carries the caller-supplied fields for a new product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    *string
	CharityID   *string
	SellerID    string
}
