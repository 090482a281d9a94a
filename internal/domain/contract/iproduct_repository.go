package contract

import (
	"context"

	"github.com/betselot-m/kindcart/internal/domain/entity"
)

// IProductRepository defines the interface for catalogue data persistence.
// Like-set mutation is deliberately excluded: the like fields may only be
// written through ILikeStore so the count/set invariant cannot be bypassed.
type IProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	GetProductByID(ctx context.Context, productID string) (*entity.Product, error)
	ListProducts(ctx context.Context, page, pageSize int) ([]*entity.Product, int64, error)
}
