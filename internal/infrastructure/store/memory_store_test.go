package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

func samplePage(name string) *entity.ProductPage {
	return &entity.ProductPage{
		Products: []entity.ProductWithReactions{
			{Product: entity.Product{ID: "p1", Name: name, Price: 10}, LikeCount: 2, DislikeCount: 1},
		},
		Pagination: entity.Pagination{Page: 1, Limit: 10, TotalPages: 1, TotalItems: 1},
	}
}

func TestMemoryProductCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryProductCache(time.Minute)

	_, found, err := c.GetProductsPage(ctx, "products:page=1:limit=10")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.SetProductsPage(ctx, "products:page=1:limit=10", samplePage("Phone")))

	got, found, err := c.GetProductsPage(ctx, "products:page=1:limit=10")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Phone", got.Products[0].Name)
	assert.Equal(t, int64(2), got.Products[0].LikeCount)
}

func TestMemoryProductCache_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryProductCache(time.Minute)
	page := samplePage("Phone")
	require.NoError(t, c.SetProductsPage(ctx, "products:page=1:limit=10", page))

	page.Products[0].Name = "mutated"

	got, found, err := c.GetProductsPage(ctx, "products:page=1:limit=10")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Phone", got.Products[0].Name)
}

func TestMemoryProductCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryProductCache(50 * time.Millisecond)
	require.NoError(t, c.SetProductsPage(ctx, "products:page=1:limit=10", samplePage("Phone")))

	time.Sleep(120 * time.Millisecond)

	_, found, err := c.GetProductsPage(ctx, "products:page=1:limit=10")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryProductCache_InvalidateOnlyListingNamespace(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryProductCache(time.Minute)
	require.NoError(t, c.SetProductsPage(ctx, "products:page=1:limit=10", samplePage("a")))
	require.NoError(t, c.SetProductsPage(ctx, "products:page=2:limit=5", samplePage("b")))
	require.NoError(t, c.SetProductsPage(ctx, "other:key", samplePage("c")))

	require.NoError(t, c.InvalidateProductLists(ctx))

	_, found, _ := c.GetProductsPage(ctx, "products:page=1:limit=10")
	assert.False(t, found)
	_, found, _ = c.GetProductsPage(ctx, "products:page=2:limit=5")
	assert.False(t, found)
	_, found, _ = c.GetProductsPage(ctx, "other:key")
	assert.True(t, found)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryProductCache_CorruptEntry(t *testing.T) {
	c := NewMemoryProductCache(time.Minute)
	c.entries.Set("products:page=1:limit=10", []byte("{not json"), time.Minute)

	_, found, err := c.GetProductsPage(context.Background(), "products:page=1:limit=10")
	assert.ErrorIs(t, err, contract.ErrCacheEntryCorrupt)
	assert.False(t, found)
}
