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

// ProductRepository represents the MongoDB implementation of the
// IProductRepository interface. It reads and creates catalogue records but
// never touches the like fields; those belong to LikeStore.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates and returns a new ProductRepository instance.
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
	}
}

// CreateProduct inserts a new product record into the database.
func (r *ProductRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	if product.LikedBy == nil {
		product.LikedBy = []string{} // new products start with an empty like set
	}
	_, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetProductByID retrieves a single product by its unique id.
func (r *ProductRepository) GetProductByID(ctx context.Context, productID string) (*entity.Product, error) {
	var product entity.Product
	filter := bson.M{"_id": productID}

	err := r.collection.FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	return &product, nil
}

// ListProducts retrieves a page of products, newest first.
func (r *ProductRepository) ListProducts(ctx context.Context, page, pageSize int) ([]*entity.Product, int64, error) {
	filter := bson.M{}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total product count: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []*entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, totalCount, nil
}
