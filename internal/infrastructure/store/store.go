package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

const (
	scanCount      = 1000
	deleteBatch    = 200
	DefaultListTTL = 60 * time.Second
)

// ProductCacheStore keeps listing pages in Redis as JSON.
type ProductCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

var _ contract.IProductCache = (*ProductCacheStore)(nil)

func NewProductCacheStore(rdb *redis.Client, listTTL time.Duration) *ProductCacheStore {
	if listTTL <= 0 {
		listTTL = DefaultListTTL
	}
	return &ProductCacheStore{rdb: rdb, listTTL: listTTL}
}

func (c *ProductCacheStore) GetProductsPage(ctx context.Context, key string) (*entity.ProductPage, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page entity.ProductPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, fmt.Errorf("%w: key=%s: %v", contract.ErrCacheEntryCorrupt, key, err)
	}
	return &page, true, nil
}

func (c *ProductCacheStore) SetProductsPage(ctx context.Context, key string, page *entity.ProductPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

// InvalidateProductLists walks the listing namespace with SCAN and deletes in
// pipelined batches. KEYS is avoided since it blocks the server.
func (c *ProductCacheStore) InvalidateProductLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, contract.ProductListKeyPrefix+"*", scanCount).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%deleteBatch == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if n%deleteBatch != 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
