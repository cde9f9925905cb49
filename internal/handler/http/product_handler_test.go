package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/mikiasgoitom/Catalog/internal/handler/http"
	dto "github.com/mikiasgoitom/Catalog/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/Catalog/internal/handler/http/mocks"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/logger"
)

func setupProductRouter(h *handler.ProductHandler, authenticated bool) *gin.Engine {
	r := gin.New()
	if authenticated {
		r.Use(func(c *gin.Context) { c.Set("userID", "mock-user-id") })
	}
	r.GET("/products", h.GetProductsHandler)
	r.POST("/products", h.CreateProductHandler)
	r.GET("/products/search", h.SearchProductsHandler)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetProducts(t *testing.T) {
	m := mocks.NewMockProductUsecase()
	r := setupProductRouter(handler.NewProductHandler(m, time.Second, logger.NewNop()), true)

	w := get(r, "/products?page=2&limit=5")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Fetched products"`)
	assert.Contains(t, w.Body.String(), `"likeCount":3`)
	assert.Contains(t, w.Body.String(), `"dislikeCount":1`)
	assert.Contains(t, w.Body.String(), `"totalPages":1`)
	assert.Equal(t, 2, m.LastPage)
	assert.Equal(t, 5, m.LastLimit)
}

func TestGetProducts_InvalidPaginationFallsBack(t *testing.T) {
	m := mocks.NewMockProductUsecase()
	r := setupProductRouter(handler.NewProductHandler(m, time.Second, logger.NewNop()), true)

	w := get(r, "/products?page=abc&limit=-3")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, m.LastPage)
	assert.Equal(t, 0, m.LastLimit)
}

func TestGetProducts_FromCache(t *testing.T) {
	m := mocks.NewMockProductUsecase()
	m.ServeFromCache = true
	r := setupProductRouter(handler.NewProductHandler(m, time.Second, logger.NewNop()), true)

	w := get(r, "/products")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fetched products (from cache)")
}

func TestGetProducts_Timeout(t *testing.T) {
	m := mocks.NewMockProductUsecase()
	m.ShouldTimeout = true
	r := setupProductRouter(handler.NewProductHandler(m, 20*time.Millisecond, logger.NewNop()), true)

	w := get(r, "/products")

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "Request timed out")
}

func TestGetProducts_Fail(t *testing.T) {
	m := mocks.NewMockProductUsecase()
	m.ShouldFailGetProducts = true
	r := setupProductRouter(handler.NewProductHandler(m, time.Second, logger.NewNop()), true)

	w := get(r, "/products")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestCreateProduct(t *testing.T) {
	m := mocks.NewMockProductUsecase()
	r := setupProductRouter(handler.NewProductHandler(m, time.Second, logger.NewNop()), true)

	w := postJSON(r, "/products", dto.CreateProductRequest{Name: "Laptop", Price: 999, Category: "electronics", Subcategory: "laptops"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Laptop"`)
	assert.Contains(t, w.Body.String(), `"createdById":"mock-user-id"`)
	assert.Equal(t, "mock-user-id", m.LastCreatedByID)
}

func TestCreateProduct_InvalidBody(t *testing.T) {
	r := setupProductRouter(handler.NewProductHandler(mocks.NewMockProductUsecase(), time.Second, logger.NewNop()), true)

	w := postJSON(r, "/products", map[string]interface{}{"name": "Laptop", "price": -1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestCreateProduct_Unauthenticated(t *testing.T) {
	r := setupProductRouter(handler.NewProductHandler(mocks.NewMockProductUsecase(), time.Second, logger.NewNop()), false)

	w := postJSON(r, "/products", dto.CreateProductRequest{Name: "Laptop", Price: 999, Category: "c", Subcategory: "s"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSearchProducts(t *testing.T) {
	m := mocks.NewMockProductUsecase()
	r := setupProductRouter(handler.NewProductHandler(m, time.Second, logger.NewNop()), false)

	w := get(r, "/products/search?q=pho&category=electronics&minPrice=10&maxPrice=500")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Filtered products")
	assert.Equal(t, "pho", m.LastFilter.Query)
	assert.Equal(t, "electronics", m.LastFilter.Category)
	require.NotNil(t, m.LastFilter.MinPrice)
	require.NotNil(t, m.LastFilter.MaxPrice)
	assert.Equal(t, 10.0, *m.LastFilter.MinPrice)
	assert.Equal(t, 500.0, *m.LastFilter.MaxPrice)
}

func TestSearchProducts_BadPrice(t *testing.T) {
	r := setupProductRouter(handler.NewProductHandler(mocks.NewMockProductUsecase(), time.Second, logger.NewNop()), false)

	w := get(r, "/products/search?minPrice=cheap")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "minPrice must be a number")
}
