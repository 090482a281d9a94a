package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/betselot-m/kindcart/internal/domain/entity"
	"github.com/betselot-m/kindcart/internal/handler/http/dto"
	usecasecontract "github.com/betselot-m/kindcart/internal/usecase/contract"
	"github.com/gin-gonic/gin"
)

// LikeHandlerInterface defines the methods for the like handler to allow
// interface-based dependency injection (for testing/mocking)
type LikeHandlerInterface interface {
	LikeProductHandler(*gin.Context)
	UnlikeProductHandler(*gin.Context)
	ListMyLikesHandler(*gin.Context)
}

// Ensure LikeHandler implements LikeHandlerInterface
var _ LikeHandlerInterface = (*LikeHandler)(nil)

type LikeHandler struct {
	likeService usecasecontract.ILikeService
}

func NewLikeHandler(likeService usecasecontract.ILikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

// LikeProductHandler records that the caller likes the product and returns
// the caller's view of it.
func (h *LikeHandler) LikeProductHandler(c *gin.Context) {
	userID := viewerID(c)
	if userID == "" {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	productID := c.Param("productID")

	product, err := h.likeService.Like(c.Request.Context(), productID, userID)
	if err != nil {
		h.respondLikeError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToProductView(product, userID))
}

// UnlikeProductHandler removes the caller from the product's like set and
// returns the caller's view of it.
func (h *LikeHandler) UnlikeProductHandler(c *gin.Context) {
	userID := viewerID(c)
	if userID == "" {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	productID := c.Param("productID")

	product, err := h.likeService.Unlike(c.Request.Context(), productID, userID)
	if err != nil {
		h.respondLikeError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToProductView(product, userID))
}

// ListMyLikesHandler returns one page of the products the caller likes.
func (h *LikeHandler) ListMyLikesHandler(c *gin.Context) {
	userID := viewerID(c)
	if userID == "" {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	cursor := c.Query("cursor")

	products, nextCursor, err := h.likeService.ListLikedByUser(c.Request.Context(), userID, limit, cursor)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list liked products")
		return
	}

	resp := dto.LikedProductsResponse{Products: dto.ToProductViews(products, userID)}
	if nextCursor != "" {
		resp.NextCursor = &nextCursor
	}
	SuccessHandler(c, http.StatusOK, resp)
}

func (h *LikeHandler) respondLikeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrProductNotFound):
		ErrorHandler(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, entity.ErrLikeConflict):
		ErrorHandler(c, http.StatusConflict, "Product is busy, please retry")
	default:
		ErrorHandler(c, http.StatusInternalServerError, "Failed to update like")
	}
}
