package contract

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

// ProductListKeyPrefix is the namespace shared by every cached listing page.
const ProductListKeyPrefix = "products:"

// ErrCacheEntryCorrupt is returned when a cached page cannot be decoded.
// Callers recompute the page and overwrite the entry.
var ErrCacheEntryCorrupt = errors.New("cached listing entry is corrupt")

// IProductCache defines caching operations for product listings.
type IProductCache interface {
	// GetProductsPage reports found=false on a miss. An undecodable entry
	// yields ErrCacheEntryCorrupt.
	GetProductsPage(ctx context.Context, key string) (*entity.ProductPage, bool, error)
	SetProductsPage(ctx context.Context, key string, page *entity.ProductPage) error
	// InvalidateProductLists removes every key under ProductListKeyPrefix.
	InvalidateProductLists(ctx context.Context) error
}
