package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/betselot-m/kindcart/internal/handler/http"
	"github.com/betselot-m/kindcart/internal/handler/http/dto"
	"github.com/betselot-m/kindcart/internal/handler/http/middleware"
	"github.com/betselot-m/kindcart/internal/handler/http/mocks"
	usecasecontract "github.com/betselot-m/kindcart/internal/usecase/contract"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupProductRouter(svc usecasecontract.IProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewProductHandler(svc)
	r := gin.Default()
	products := r.Group("/products")
	products.Use(middleware.OptionalAuthMiddleWare(stubVerifier{}))
	products.GET("", h.ListProductsHandler)
	products.GET("/:productID", h.GetProductHandler)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleWare(stubVerifier{}))
	protected.POST("/products", h.CreateProductHandler)
	return r
}

func TestGetProduct_Anonymous(t *testing.T) {
	r := setupProductRouter(mocks.NewMockProductService())

	w := doRequest(r, "GET", "/products/mock-product-id", false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"like_count":2`)
	assert.Contains(t, w.Body.String(), `"is_liked_by_user":false`)
	assert.NotContains(t, w.Body.String(), "liked_by")
}

func TestGetProduct_SignedInViewer(t *testing.T) {
	mockService := mocks.NewMockProductService()
	mockService.MockProduct.LikedBy = []string{"u1", "mock-user-id"}
	mockService.MockProduct.LikeCount = 2
	r := setupProductRouter(mockService)

	w := doRequest(r, "GET", "/products/mock-product-id", true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_liked_by_user":true`)
}

func TestGetProduct_NotFound(t *testing.T) {
	mockService := mocks.NewMockProductService()
	mockService.ReturnNotFound = true
	r := setupProductRouter(mockService)

	w := doRequest(r, "GET", "/products/no-such-id", false)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestCreateProduct(t *testing.T) {
	r := setupProductRouter(mocks.NewMockProductService())
	payload := dto.CreateProductRequest{
		Name:  "Fair-trade coffee beans",
		Price: 12.5,
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/products", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Fair-trade coffee beans")
	assert.Contains(t, w.Body.String(), `"seller_id":"mock-user-id"`)
}

func TestCreateProduct_BlankName(t *testing.T) {
	r := setupProductRouter(mocks.NewMockProductService())
	body := []byte(`{"name": "   ", "price": 12.5}`)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/products", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "notblank")
}

func TestCreateProduct_Unauthenticated(t *testing.T) {
	r := setupProductRouter(mocks.NewMockProductService())
	body := []byte(`{"name": "Tote bag", "price": 9.99}`)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/products", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListProducts(t *testing.T) {
	r := setupProductRouter(mocks.NewMockProductService())

	w := doRequest(r, "GET", "/products", false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_count":1`)
	assert.Contains(t, w.Body.String(), `"current_page":1`)
	assert.NotContains(t, w.Body.String(), "liked_by")
}
