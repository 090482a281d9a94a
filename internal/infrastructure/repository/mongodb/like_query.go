package mongodb

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/betselot-m/kindcart/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListLikedBy returns one page of products whose like set contains userID,
// ordered by last like activity (newest first) with the product id as a
// stable tiebreak. Each page is computed independently from the cursor; no
// state is kept between calls, so concurrent mutations may shift items
// between pages but never break a page itself.
func (s *LikeStore) ListLikedBy(ctx context.Context, userID string, limit int, cursor string) ([]*entity.Product, string, error) {
	limit = normalizeLimit(limit)

	filter := bson.M{"liked_by": userID}
	if cursor != "" {
		// A cursor that no longer resolves to a product (deleted, garbage,
		// or from another listing) degrades to starting from the head.
		if anchor, ok := s.resolveCursor(ctx, cursor); ok {
			filter["$or"] = []bson.M{
				{"last_like_activity_at": bson.M{"$lt": anchor.LastLikeActivityAt}},
				{"last_like_activity_at": anchor.LastLikeActivityAt, "_id": bson.M{"$gt": anchor.ID}},
			}
		}
	}

	opts := options.Find().
		SetSort(bson.D{
			{Key: "last_like_activity_at", Value: -1},
			{Key: "_id", Value: 1},
		}).
		SetLimit(int64(limit) + 1) // one extra row decides whether a next page exists

	cur, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list liked products: %w", err)
	}
	defer cur.Close(ctx)

	var products []*entity.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, "", fmt.Errorf("failed to decode liked products: %w", err)
	}

	nextCursor := ""
	if len(products) > limit {
		products = products[:limit]
		nextCursor = encodeCursor(products[len(products)-1].ID)
	}
	return products, nextCursor, nil
}

// resolveCursor maps an opaque cursor back to the product it points at so the
// resume position can be recomputed from that product's stored sort key.
func (s *LikeStore) resolveCursor(ctx context.Context, cursor string) (*entity.Product, bool) {
	productID, err := decodeCursor(cursor)
	if err != nil {
		return nil, false
	}
	var anchor entity.Product
	if err := s.collection.FindOne(ctx, bson.M{"_id": productID}).Decode(&anchor); err != nil {
		return nil, false
	}
	return &anchor, true
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

// The cursor is the id of the last product on the previous page, base64url
// encoded so it stays opaque and URL safe.
func encodeCursor(productID string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(productID))
}

func decodeCursor(cursor string) (string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return "", fmt.Errorf("malformed cursor: %w", err)
	}
	return string(decoded), nil
}
