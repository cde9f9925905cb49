package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"

	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

// MemoryProductCache is an in-process IProductCache. Entries are stored as
// JSON so callers get the same copy semantics as with Redis.
type MemoryProductCache struct {
	entries cache.Cache[string, []byte]
	listTTL time.Duration
}

var _ contract.IProductCache = (*MemoryProductCache)(nil)

func NewMemoryProductCache(listTTL time.Duration) *MemoryProductCache {
	if listTTL <= 0 {
		listTTL = DefaultListTTL
	}
	return &MemoryProductCache{
		entries: cache.NewCache[string, []byte]().WithTTL(listTTL),
		listTTL: listTTL,
	}
}

func (c *MemoryProductCache) GetProductsPage(_ context.Context, key string) (*entity.ProductPage, bool, error) {
	b, ok := c.entries.Get(key)
	if !ok {
		return nil, false, nil
	}
	var page entity.ProductPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, fmt.Errorf("%w: key=%s: %v", contract.ErrCacheEntryCorrupt, key, err)
	}
	return &page, true, nil
}

func (c *MemoryProductCache) SetProductsPage(_ context.Context, key string, page *entity.ProductPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	c.entries.Set(key, data, c.listTTL)
	return nil
}

func (c *MemoryProductCache) InvalidateProductLists(_ context.Context) error {
	c.entries.InvalidateFn(func(key string) bool {
		return strings.HasPrefix(key, contract.ProductListKeyPrefix)
	})
	return nil
}

// Len reports the number of live entries.
func (c *MemoryProductCache) Len() int {
	c.entries.DeleteExpired()
	return c.entries.Len()
}
