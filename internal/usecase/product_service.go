package usecase

import (
	"context"
	"fmt"

	"github.com/betselot-m/kindcart/internal/domain/contract"
	"github.com/betselot-m/kindcart/internal/domain/entity"
	usecasecontract "github.com/betselot-m/kindcart/internal/usecase/contract"
)

const (
	defaultProductPageSize = 20
	maxProductPageSize     = 100
)

// ProductService handles the catalogue read/write surface the like subsystem
// depends on.
type ProductService struct {
	productRepo  contract.IProductRepository
	productCache contract.IProductCache
	uuidGen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
}

// NewProductService creates and returns a new ProductService instance.
func NewProductService(productRepo contract.IProductRepository, uuidGen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		uuidGen:     uuidGen,
		logger:      logger,
	}
}

// SetProductCache attaches an optional read-through cache for single-product
// fetches.
func (s *ProductService) SetProductCache(cache contract.IProductCache) {
	s.productCache = cache
}

// CreateProduct adds a new product to the catalogue with an empty like set.
func (s *ProductService) CreateProduct(ctx context.Context, input usecasecontract.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:          s.uuidGen.NewUUID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		CharityID:   input.CharityID,
		SellerID:    input.SellerID,
		LikedBy:     []string{},
	}
	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// GetProductByID fetches a single product, serving from the cache when it
// holds a copy.
func (s *ProductService) GetProductByID(ctx context.Context, productID string) (*entity.Product, error) {
	if s.productCache != nil {
		if product, ok, err := s.productCache.GetProductByID(ctx, productID); err == nil && ok {
			return product, nil
		}
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if s.productCache != nil {
		if err := s.productCache.SetProduct(ctx, product); err != nil {
			s.logger.Warnf("failed to cache product %s: %v", productID, err)
		}
	}
	return product, nil
}

// ListProducts retrieves one page of the catalogue, newest first.
func (s *ProductService) ListProducts(ctx context.Context, page, pageSize int) ([]*entity.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultProductPageSize
	}
	if pageSize > maxProductPageSize {
		pageSize = maxProductPageSize
	}
	return s.productRepo.ListProducts(ctx, page, pageSize)
}
