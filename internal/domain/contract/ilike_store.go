package contract

import (
	"context"

	"github.com/betselot-m/kindcart/internal/domain/entity"
)

// ILikeStore defines atomic, idempotent mutation of one product's like set.
//
// Both operations run the membership check and the counter update as a single
// indivisible unit per product: repeating a call with the same arguments is a
// no-op that still returns the current product state, and the returned
// product always satisfies LikeCount == len(LikedBy).
type ILikeStore interface {
	// AddLike inserts userID into the product's like set and bumps the
	// counter. Returns entity.ErrProductNotFound for an unknown product and
	// entity.ErrLikeConflict when the internal retry budget is exhausted.
	AddLike(ctx context.Context, productID, userID string) (*entity.Product, error)

	// RemoveLike is the symmetric inverse. The counter never drops below
	// zero, even from a corrupted prior state.
	RemoveLike(ctx context.Context, productID, userID string) (*entity.Product, error)
}

// ILikeQueryIndex enumerates products a given user currently likes, most
// recently active first, one stateless page at a time.
type ILikeQueryIndex interface {
	// ListLikedBy returns up to limit products plus an opaque cursor for the
	// next page ("" when exhausted). An unknown or stale cursor restarts
	// from the head rather than erroring.
	ListLikedBy(ctx context.Context, userID string, limit int, cursor string) ([]*entity.Product, string, error)
}
