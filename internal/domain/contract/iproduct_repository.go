package contract

import (
	"context"

	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

// IProductRepository provides methods for managing product data in the database.
type IProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	GetProductByID(ctx context.Context, productID string) (*entity.Product, error)
	// ListProducts returns products newest first.
	ListProducts(ctx context.Context, offset, limit int) ([]*entity.Product, error)
	CountProducts(ctx context.Context) (int64, error)
	SearchProducts(ctx context.Context, filter entity.ProductSearchFilter) ([]*entity.Product, error)
}
