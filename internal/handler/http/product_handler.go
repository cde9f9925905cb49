package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
	"github.com/mikiasgoitom/Catalog/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Catalog/internal/usecase/contract"
)

type ProductHandler struct {
	baseHandler
	productUsecase usecasecontract.IProductUseCase
}

func NewProductHandler(productUsecase usecasecontract.IProductUseCase, timeout time.Duration, logger usecasecontract.IAppLogger) *ProductHandler {
	return &ProductHandler{
		baseHandler:    baseHandler{timeout: timeout, logger: logger},
		productUsecase: productUsecase,
	}
}

// GetProductsHandler serves one page of the catalog with reaction counts.
func (h *ProductHandler) GetProductsHandler(c *gin.Context) {
	var q dto.ListProductsQuery
	_ = c.ShouldBindQuery(&q)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	page, fromCache, err := h.productUsecase.GetProducts(ctx, parsePositiveInt(q.Page), parsePositiveInt(q.Limit))
	if err != nil {
		h.respondError(c, "list products", err)
		return
	}

	message := "Fetched products"
	if fromCache {
		message = "Fetched products (from cache)"
	}
	SuccessHandler(c, http.StatusOK, message, page)
}

// CreateProductHandler creates a product owned by the caller.
func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateProductRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	product, err := h.productUsecase.CreateProduct(ctx, req.Name, req.Price, req.Category, req.Subcategory, userID)
	if err != nil {
		h.respondError(c, "create product", err)
		return
	}
	SuccessHandler(c, http.StatusCreated, "Product created", product)
}

// SearchProductsHandler filters products by name, category and price range.
func (h *ProductHandler) SearchProductsHandler(c *gin.Context) {
	var q dto.SearchProductsQuery
	_ = c.ShouldBindQuery(&q)

	filter := entity.ProductSearchFilter{
		Query:       q.Q,
		Category:    q.Category,
		Subcategory: q.Subcategory,
	}
	var err error
	if filter.MinPrice, err = parseOptionalFloat(q.MinPrice); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "minPrice must be a number")
		return
	}
	if filter.MaxPrice, err = parseOptionalFloat(q.MaxPrice); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "maxPrice must be a number")
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	products, err := h.productUsecase.SearchProducts(ctx, filter)
	if err != nil {
		h.respondError(c, "search products", err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Filtered products", dto.SearchResponse{Products: products})
}

// parsePositiveInt returns 0 for anything that is not a positive integer so
// the usecase applies its default.
func parsePositiveInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
