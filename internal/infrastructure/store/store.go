package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/betselot-m/kindcart/internal/domain/entity"
)

// ProductCacheStore caches single-product reads in Redis. Entries are
// invalidated after every like/unlike so cached counts never outlive the
// state they were computed from.
type ProductCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
}

func NewProductCacheStore(rdb *redis.Client) *ProductCacheStore {
	return &ProductCacheStore{
		rdb:       rdb,
		detailTTL: 10 * time.Minute,
	}
}

func productDetailKey(productID string) string { return fmt.Sprintf("product:id:%s", productID) }

// cachedProduct carries the like fields alongside the entity: they are
// excluded from JSON on the entity itself, and a cached copy without them
// would report like_count and is_liked_by_user wrong for every viewer.
type cachedProduct struct {
	Product            entity.Product `json:"product"`
	LikeCount          int            `json:"like_count"`
	LikedBy            []string       `json:"liked_by"`
	LastLikeActivityAt time.Time      `json:"last_like_activity_at"`
}

func (c *ProductCacheStore) GetProductByID(ctx context.Context, productID string) (*entity.Product, bool, error) {
	b, err := c.rdb.Get(ctx, productDetailKey(productID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var cached cachedProduct
	if err := json.Unmarshal(b, &cached); err != nil {
		return nil, false, nil
	}
	product := cached.Product
	product.LikeCount = cached.LikeCount
	product.LikedBy = cached.LikedBy
	product.LastLikeActivityAt = cached.LastLikeActivityAt
	return &product, true, nil
}

func (c *ProductCacheStore) SetProduct(ctx context.Context, product *entity.Product) error {
	data, err := json.Marshal(cachedProduct{
		Product:            *product,
		LikeCount:          product.LikeCount,
		LikedBy:            product.LikedBy,
		LastLikeActivityAt: product.LastLikeActivityAt,
	})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, productDetailKey(product.ID), data, c.detailTTL).Err()
}

func (c *ProductCacheStore) InvalidateProduct(ctx context.Context, productID string) error {
	return c.rdb.Del(ctx, productDetailKey(productID)).Err()
}
