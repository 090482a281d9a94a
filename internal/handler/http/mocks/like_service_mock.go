package mocks

import (
	"context"
	"time"

	"github.com/betselot-m/kindcart/internal/domain/entity"
	usecasecontract "github.com/betselot-m/kindcart/internal/usecase/contract"
)

// MockLikeService is a mock implementation of the ILikeService interface
type MockLikeService struct {
	// Control mock behavior
	ReturnNotFound bool
	ReturnConflict bool
	ShouldFailList bool

	// Return values
	MockProduct    entity.Product
	MockNextCursor string

	// Captured arguments of the last call
	LastProductID string
	LastUserID    string
	LastLimit     int
	LastCursor    string
}

// Ensure MockLikeService implements the interface used by NewLikeHandler
var _ usecasecontract.ILikeService = (*MockLikeService)(nil)

func NewMockLikeService() *MockLikeService {
	return &MockLikeService{
		MockProduct: entity.Product{
			ID:                 "mock-product-id",
			Name:               "Hand-knitted scarf",
			Price:              24.99,
			SellerID:           "mock-seller-id",
			LikeCount:          1,
			LikedBy:            []string{"mock-user-id"},
			LastLikeActivityAt: time.Now(),
		},
	}
}

func (m *MockLikeService) Like(ctx context.Context, productID, userID string) (*entity.Product, error) {
	m.LastProductID, m.LastUserID = productID, userID
	if m.ReturnNotFound {
		return nil, entity.ErrProductNotFound
	}
	if m.ReturnConflict {
		return nil, entity.ErrLikeConflict
	}
	return &m.MockProduct, nil
}

func (m *MockLikeService) Unlike(ctx context.Context, productID, userID string) (*entity.Product, error) {
	m.LastProductID, m.LastUserID = productID, userID
	if m.ReturnNotFound {
		return nil, entity.ErrProductNotFound
	}
	if m.ReturnConflict {
		return nil, entity.ErrLikeConflict
	}
	return &m.MockProduct, nil
}

func (m *MockLikeService) ListLikedByUser(ctx context.Context, userID string, limit int, cursor string) ([]*entity.Product, string, error) {
	m.LastUserID, m.LastLimit, m.LastCursor = userID, limit, cursor
	if m.ShouldFailList {
		return nil, "", context.DeadlineExceeded
	}
	return []*entity.Product{&m.MockProduct}, m.MockNextCursor, nil
}
