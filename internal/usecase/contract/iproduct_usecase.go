package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

type IProductUseCase interface {
	CreateProduct(ctx context.Context, name string, price float64, category, subcategory, createdByID string) (*entity.Product, error)
	GetProducts(ctx context.Context, page, limit int) (*entity.ProductPage, bool, error)
	SearchProducts(ctx context.Context, filter entity.ProductSearchFilter) ([]*entity.Product, error)
}
