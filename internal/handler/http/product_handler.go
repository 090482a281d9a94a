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

// ProductHandlerInterface defines the methods for the product handler to
// allow interface-based dependency injection (for testing/mocking)
type ProductHandlerInterface interface {
	CreateProductHandler(*gin.Context)
	GetProductHandler(*gin.Context)
	ListProductsHandler(*gin.Context)
}

// Ensure ProductHandler implements ProductHandlerInterface
var _ ProductHandlerInterface = (*ProductHandler)(nil)

type ProductHandler struct {
	productService usecasecontract.IProductService
}

func NewProductHandler(productService usecasecontract.IProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// CreateProductHandler adds a product to the catalogue on behalf of the caller.
func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	sellerID := viewerID(c)
	if sellerID == "" {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CreateProductRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), usecasecontract.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CharityID:   req.CharityID,
		SellerID:    sellerID,
	})
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to create product")
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToProductView(product, sellerID))
}

// GetProductHandler returns a single product projected for the viewer, who
// may be anonymous.
func (h *ProductHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("productID")

	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Product not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToProductView(product, viewerID(c)))
}

// ListProductsHandler returns one page of the catalogue projected for the viewer.
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	products, totalCount, err := h.productService.ListProducts(c.Request.Context(), page, pageSize)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list products")
		return
	}
	if page < 1 {
		page = 1
	}

	SuccessHandler(c, http.StatusOK, dto.PaginatedProductsResponse{
		Products:    dto.ToProductViews(products, viewerID(c)),
		TotalCount:  totalCount,
		CurrentPage: page,
	})
}
