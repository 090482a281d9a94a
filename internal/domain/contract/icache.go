package contract

import (
	"context"

	"github.com/betselot-m/kindcart/internal/domain/entity"
)

// IProductCache defines caching operations for single-product reads.
// Entries are invalidated after every like/unlike so a cached read can never
// expose a count that disagrees with the committed like set.
type IProductCache interface {
	GetProductByID(ctx context.Context, productID string) (*entity.Product, bool, error)
	SetProduct(ctx context.Context, product *entity.Product) error
	InvalidateProduct(ctx context.Context, productID string) error
}
