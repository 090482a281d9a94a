package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/betselot-m/kindcart/internal/domain/contract"
	"github.com/betselot-m/kindcart/internal/domain/entity"
	"github.com/betselot-m/kindcart/internal/infrastructure/metrics"
	usecasecontract "github.com/betselot-m/kindcart/internal/usecase/contract"
)

// LikeService orchestrates the like store and query index and is the only
// path through which handlers mutate a product's like fields.
type LikeService struct {
	likeStore    contract.ILikeStore
	likeIndex    contract.ILikeQueryIndex
	productCache contract.IProductCache
	logger       usecasecontract.IAppLogger
}

// NewLikeService creates and returns a new LikeService instance.
func NewLikeService(likeStore contract.ILikeStore, likeIndex contract.ILikeQueryIndex, logger usecasecontract.IAppLogger) *LikeService {
	return &LikeService{
		likeStore: likeStore,
		likeIndex: likeIndex,
		logger:    logger,
	}
}

// SetProductCache attaches an optional product cache that is invalidated
// after every successful mutation.
func (s *LikeService) SetProductCache(cache contract.IProductCache) {
	s.productCache = cache
}

// Like records that userID likes productID. Repeating the call for the same
// pair succeeds without further effect.
func (s *LikeService) Like(ctx context.Context, productID, userID string) (*entity.Product, error) {
	product, err := s.likeStore.AddLike(ctx, productID, userID)
	if err != nil {
		if errors.Is(err, entity.ErrLikeConflict) {
			metrics.LikeConflictsTotal.Inc()
			s.logger.Warnf("like retry budget exhausted for product %s", productID)
		}
		return nil, err
	}
	metrics.LikesTotal.Inc()
	s.invalidateProduct(ctx, productID)
	return product, nil
}

// Unlike removes userID from productID's like set. Unliking a never-liked
// product succeeds without effect.
func (s *LikeService) Unlike(ctx context.Context, productID, userID string) (*entity.Product, error) {
	product, err := s.likeStore.RemoveLike(ctx, productID, userID)
	if err != nil {
		if errors.Is(err, entity.ErrLikeConflict) {
			metrics.LikeConflictsTotal.Inc()
			s.logger.Warnf("unlike retry budget exhausted for product %s", productID)
		}
		return nil, err
	}
	metrics.UnlikesTotal.Inc()
	s.invalidateProduct(ctx, productID)
	return product, nil
}

// ListLikedByUser pages through the products userID currently likes. No
// existence check is needed: an unknown user simply has an empty listing.
func (s *LikeService) ListLikedByUser(ctx context.Context, userID string, limit int, cursor string) ([]*entity.Product, string, error) {
	products, nextCursor, err := s.likeIndex.ListLikedBy(ctx, userID, limit, cursor)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list liked products for user %s: %w", userID, err)
	}
	return products, nextCursor, nil
}

// invalidateProduct drops the cached copy so the next read reflects the
// committed like state. Cache trouble is logged, never surfaced.
func (s *LikeService) invalidateProduct(ctx context.Context, productID string) {
	if s.productCache == nil {
		return
	}
	if err := s.productCache.InvalidateProduct(ctx, productID); err != nil {
		s.logger.Warnf("failed to invalidate cached product %s: %v", productID, err)
	}
}
