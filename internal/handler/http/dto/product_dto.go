package dto

import (
	"time"

	"github.com/betselot-m/kindcart/internal/domain/entity"
)

// Request DTOs for Product Handlers

// CreateProductRequest defines the structure for adding a catalogue product.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,notblank"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url"`
	CharityID   *string `json:"charity_id" binding:"omitempty,uuid4"`
}

// Response DTOs

// ProductView is the outward-facing product representation. It never carries
// the like membership set, for any viewer; callers only see the derived
// like_count and is_liked_by_user fields.
type ProductView struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	ImageURL      *string   `json:"image_url,omitempty"`
	CharityID     *string   `json:"charity_id,omitempty"`
	SellerID      string    `json:"seller_id"`
	LikeCount     int       `json:"like_count"`
	IsLikedByUser bool      `json:"is_liked_by_user"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LikedProductsResponse is one page of the caller's liked products.
type LikedProductsResponse struct {
	Products   []ProductView `json:"products"`
	NextCursor *string       `json:"next_cursor,omitempty"`
}

// PaginatedProductsResponse defines the structure for a paginated catalogue listing.
type PaginatedProductsResponse struct {
	Products    []ProductView `json:"products"`
	TotalCount  int64         `json:"total_count"`
	CurrentPage int           `json:"current_page"`
}

// ToProductView projects a product for a given viewer. An empty viewerID
// means the request was anonymous, so is_liked_by_user is false. A product
// record predating the like feature projects to like_count 0.
func ToProductView(product *entity.Product, viewerID string) ProductView {
	return ProductView{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		ImageURL:      product.ImageURL,
		CharityID:     product.CharityID,
		SellerID:      product.SellerID,
		LikeCount:     product.LikeCount,
		IsLikedByUser: product.IsLikedBy(viewerID),
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

// ToProductViews projects a slice of products for the same viewer.
func ToProductViews(products []*entity.Product, viewerID string) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, ToProductView(product, viewerID))
	}
	return views
}
