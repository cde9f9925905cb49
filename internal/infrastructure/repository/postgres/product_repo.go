package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mikiasgoitom/Catalog/internal/domain"
	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var _ contract.IProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	if err := r.db.WithContext(ctx).Omit("CreatedBy").Create(productToModel(product)).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("%w: unknown creator", domain.ErrInvalidProductData)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, productID string) (*entity.Product, error) {
	var m ProductModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return m.toEntity(), nil
}

func (r *ProductRepository) ListProducts(ctx context.Context, offset, limit int) ([]*entity.Product, error) {
	var rows []ProductModel
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return toProducts(rows), nil
}

func (r *ProductRepository) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&ProductModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to get total product count: %w", err)
	}
	return total, nil
}

func (r *ProductRepository) SearchProducts(ctx context.Context, f entity.ProductSearchFilter) ([]*entity.Product, error) {
	q := r.db.WithContext(ctx).Model(&ProductModel{})
	if f.Query != "" {
		q = q.Where("name ILIKE ?", "%"+escapeLike(f.Query)+"%")
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Subcategory != "" {
		q = q.Where("subcategory = ?", f.Subcategory)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	var rows []ProductModel
	if err := q.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve search results: %w", err)
	}
	return toProducts(rows), nil
}

func toProducts(rows []ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, rows[i].toEntity())
	}
	return products
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
