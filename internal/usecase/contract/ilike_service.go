package usecasecontract

import (
	"context"

	"github.com/betselot-m/kindcart/internal/domain/entity"
)

// ILikeService defines the public like operations exposed to the HTTP layer.
type ILikeService interface {
	// Like records that userID likes productID. Calling it again for the
	// same pair is a no-op that still succeeds with the current state.
	Like(ctx context.Context, productID, userID string) (*entity.Product, error)

	// Unlike removes userID from the product's like set; unliking a product
	// the user never liked succeeds without effect.
	Unlike(ctx context.Context, productID, userID string) (*entity.Product, error)

	// ListLikedByUser pages through the products userID currently likes,
	// most recent like activity first. An empty next cursor means the
	// listing is exhausted.
	ListLikedByUser(ctx context.Context, userID string, limit int, cursor string) ([]*entity.Product, string, error)
}
