package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mikiasgoitom/Catalog/internal/domain"
	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Catalog/internal/usecase/contract"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ProductUsecase implements the product listing, creation and search flows.
type ProductUsecase struct {
	productRepo  contract.IProductRepository
	reactionRepo contract.IReactionRepository
	productCache contract.IProductCache
	invalidator  *ListingInvalidator
	publisher    contract.IEventPublisher
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
}

func NewProductUsecase(
	productRepo contract.IProductRepository,
	reactionRepo contract.IReactionRepository,
	invalidator *ListingInvalidator,
	publisher contract.IEventPublisher,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		reactionRepo: reactionRepo,
		invalidator:  invalidator,
		publisher:    publisher,
		uuidgen:      uuidgen,
		logger:       logger,
	}
}

var _ usecasecontract.IProductUseCase = (*ProductUsecase)(nil)

// SetProductCache enables cache-aside reads for listings. Without it every
// listing goes to the store.
func (uc *ProductUsecase) SetProductCache(cache contract.IProductCache) {
	uc.productCache = cache
}

// buildProductsListCacheKey builds a stable key for list endpoint caching
func buildProductsListCacheKey(page, limit int) string {
	return fmt.Sprintf("%spage=%d:limit=%d", contract.ProductListKeyPrefix, page, limit)
}

// NormalizePagination applies the listing defaults and the limit cap.
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	// keep (page-1)*limit representable
	if page-1 > math.MaxInt/limit {
		page = math.MaxInt/limit + 1
	}
	return page, limit
}

// GetProducts returns one page of products with reaction counts, serving from
// the listing cache when possible.
func (uc *ProductUsecase) GetProducts(ctx context.Context, page, limit int) (*entity.ProductPage, bool, error) {
	page, limit = NormalizePagination(page, limit)
	key := buildProductsListCacheKey(page, limit)

	// Try cache first
	if uc.productCache != nil {
		start := time.Now()
		cached, found, err := uc.productCache.GetProductsPage(ctx, key)
		elapsed := time.Since(start)
		switch {
		case err == nil && found && cached != nil:
			metrics.IncListHit()
			metrics.AddHitDuration(elapsed.Seconds())
			uc.logger.Infof("cache hit: products list key=%s took=%s", key, elapsed)
			return cached, true, nil
		case err == nil:
			metrics.IncListMiss()
			metrics.AddMissDuration(elapsed.Seconds())
			uc.logger.Infof("cache miss: products list key=%s took=%s", key, elapsed)
		case errors.Is(err, contract.ErrCacheEntryCorrupt):
			metrics.IncListError()
			uc.logger.Warningf("cache decode failed: products list key=%s err=%v took=%s", key, err, elapsed)
		default:
			metrics.IncListError()
			uc.logger.Warningf("cache error: products list key=%s err=%v took=%s", key, err, elapsed)
		}
	}

	total, err := uc.productRepo.CountProducts(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to count products: %w", err)
	}
	var products []*entity.Product
	if offset := (page - 1) * limit; int64(offset) < total {
		products, err = uc.productRepo.ListProducts(ctx, offset, limit)
		if err != nil {
			return nil, false, fmt.Errorf("failed to list products: %w", err)
		}
	}

	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	counts := map[string]entity.ReactionCounts{}
	if len(ids) > 0 {
		counts, err = uc.reactionRepo.CountsForProducts(ctx, ids)
		if err != nil {
			return nil, false, fmt.Errorf("failed to aggregate reaction counts: %w", err)
		}
	}

	items := make([]entity.ProductWithReactions, 0, len(products))
	for _, p := range products {
		c := counts[p.ID]
		items = append(items, entity.ProductWithReactions{
			Product:      *p,
			LikeCount:    c.Likes,
			DislikeCount: c.Dislikes,
		})
	}

	result := &entity.ProductPage{
		Products: items,
		Pagination: entity.Pagination{
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
			TotalItems: total,
		},
	}

	// If there is a cache miss before returning save the results to the cache
	if uc.productCache != nil {
		if err := uc.productCache.SetProductsPage(ctx, key, result); err != nil {
			uc.logger.Warningf("cache set failed: products list key=%s err=%v", key, err)
		} else {
			uc.logger.Debugf("cache set: products list key=%s size=%d", key, len(items))
		}
	}

	return result, false, nil
}

// CreateProduct validates and stores a new product, then drops every cached
// listing page.
func (uc *ProductUsecase) CreateProduct(ctx context.Context, name string, price float64, category, subcategory, createdByID string) (*entity.Product, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	subcategory = strings.TrimSpace(subcategory)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidProductData)
	case price <= 0 || math.IsNaN(price) || math.IsInf(price, 0):
		return nil, fmt.Errorf("%w: price must be a positive number", domain.ErrInvalidProductData)
	case category == "":
		return nil, fmt.Errorf("%w: category is required", domain.ErrInvalidProductData)
	case subcategory == "":
		return nil, fmt.Errorf("%w: subcategory is required", domain.ErrInvalidProductData)
	case createdByID == "":
		return nil, fmt.Errorf("%w: creator is required", domain.ErrInvalidInput)
	}

	product := &entity.Product{
		ID:          uc.uuidgen.NewUUID(),
		Name:        name,
		Price:       price,
		Category:    category,
		Subcategory: subcategory,
		CreatedByID: createdByID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	uc.invalidator.InvalidateListings(ctx, "product created")

	if uc.publisher != nil {
		if err := uc.publisher.PublishProductCreated(ctx, product); err != nil {
			uc.logger.Warnf("failed to publish product event for %s: %v", product.ID, err)
		}
	}
	return product, nil
}

// SearchProducts runs an uncached filtered query.
func (uc *ProductUsecase) SearchProducts(ctx context.Context, filter entity.ProductSearchFilter) ([]*entity.Product, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Subcategory = strings.TrimSpace(filter.Subcategory)
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, fmt.Errorf("%w: minPrice must not exceed maxPrice", domain.ErrInvalidInput)
	}

	products, err := uc.productRepo.SearchProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	if products == nil {
		products = []*entity.Product{}
	}
	return products, nil
}
