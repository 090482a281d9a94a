package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/betselot-m/kindcart/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxTxnAttempts bounds how often a like/unlike transaction is re-run after a
// write conflict before the operation surfaces entity.ErrLikeConflict.
const maxTxnAttempts = 5

// LikeStore owns all writes to a product's like fields. Every mutation runs
// the read-membership-write sequence inside one session transaction on the
// product document, so two concurrent calls for the same product serialize
// and the LikeCount == len(LikedBy) invariant holds in every committed state.
type LikeStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewLikeStore creates and returns a new LikeStore instance.
func NewLikeStore(client *mongo.Client, db *mongo.Database) *LikeStore {
	return &LikeStore{
		client:     client,
		collection: db.Collection("products"),
	}
}

// AddLike inserts userID into the product's like set and increments the
// counter. Re-liking an already liked product is a no-op that still returns
// the current product state.
func (s *LikeStore) AddLike(ctx context.Context, productID, userID string) (*entity.Product, error) {
	return s.mutateLikeSet(ctx, productID, userID, true)
}

// RemoveLike removes userID from the product's like set and decrements the
// counter, clamped at zero. Unliking a product the user never liked is a
// no-op that still returns the current product state.
func (s *LikeStore) RemoveLike(ctx context.Context, productID, userID string) (*entity.Product, error) {
	return s.mutateLikeSet(ctx, productID, userID, false)
}

// mutateLikeSet drives the retry loop around one transactional attempt.
// Only conflict-class failures are retried; ErrProductNotFound and other
// errors propagate immediately.
func (s *LikeStore) mutateLikeSet(ctx context.Context, productID, userID string, liked bool) (*entity.Product, error) {
	var lastErr error
	for attempt := 0; attempt < maxTxnAttempts; attempt++ {
		product, err := s.runLikeTxn(ctx, productID, userID, liked)
		if err == nil {
			return product, nil
		}
		if !isTransientTxnError(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %v", entity.ErrLikeConflict, lastErr)
}

// runLikeTxn performs a single read-check-write attempt inside a session
// transaction. liked is the membership state the caller wants after commit.
func (s *LikeStore) runLikeTxn(ctx context.Context, productID, userID string, liked bool) (*entity.Product, error) {
	session, err := s.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	var result entity.Product
	err = mongo.WithSession(ctx, session, func(sc mongo.SessionContext) error {
		if err := session.StartTransaction(); err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}

		var current entity.Product
		if err := s.collection.FindOne(sc, bson.M{"_id": productID}).Decode(&current); err != nil {
			_ = session.AbortTransaction(sc)
			if errors.Is(err, mongo.ErrNoDocuments) {
				return entity.ErrProductNotFound
			}
			return fmt.Errorf("failed to read product: %w", err)
		}

		if current.IsLikedBy(userID) == liked {
			// Desired membership already holds; commit nothing.
			_ = session.AbortTransaction(sc)
			result = current
			return nil
		}

		now := time.Now()
		set := bson.M{
			"last_like_activity_at": now,
			"updated_at":            now,
		}
		var update bson.M
		if liked {
			// The new count is derived from the set we just read rather
			// than blindly incremented, which also heals a drifted counter.
			set["like_count"] = len(current.LikedBy) + 1
			update = bson.M{
				"$addToSet": bson.M{"liked_by": userID},
				"$set":      set,
			}
		} else {
			next := len(current.LikedBy) - 1
			if next < 0 {
				next = 0
			}
			set["like_count"] = next
			update = bson.M{
				"$pull": bson.M{"liked_by": userID},
				"$set":  set,
			}
		}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		if err := s.collection.FindOneAndUpdate(sc, bson.M{"_id": productID}, update, opts).Decode(&result); err != nil {
			_ = session.AbortTransaction(sc)
			if errors.Is(err, mongo.ErrNoDocuments) {
				return entity.ErrProductNotFound
			}
			return fmt.Errorf("failed to update like set: %w", err)
		}

		if err := session.CommitTransaction(sc); err != nil {
			return fmt.Errorf("failed to commit like transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// isTransientTxnError reports whether the server flagged the failure as safe
// to retry as a whole transaction.
func isTransientTxnError(err error) bool {
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.HasErrorLabel("TransientTransactionError") ||
			serverErr.HasErrorLabel("UnknownTransactionCommitResult")
	}
	return false
}
