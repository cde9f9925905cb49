package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/Catalog/internal/domain"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Catalog/internal/usecase/contract"
)

// MockProductUsecase is a hand-written stand-in for the product usecase.
type MockProductUsecase struct {
	ShouldFailGetProducts   bool
	ShouldTimeout           bool
	ShouldFailCreateInvalid bool
	ShouldFailSearch        bool
	ServeFromCache          bool

	// Recorded arguments
	LastPage, LastLimit int
	LastFilter          entity.ProductSearchFilter
	LastCreatedByID     string

	MockProduct entity.Product
}

var _ usecasecontract.IProductUseCase = (*MockProductUsecase)(nil)

func NewMockProductUsecase() *MockProductUsecase {
	return &MockProductUsecase{
		MockProduct: entity.Product{
			ID:          "11111111-1111-1111-1111-111111111111",
			Name:        "Phone",
			Price:       199.5,
			Category:    "electronics",
			Subcategory: "phones",
			CreatedByID: "mock-user-id",
			CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}
}

func (m *MockProductUsecase) CreateProduct(ctx context.Context, name string, price float64, category, subcategory, createdByID string) (*entity.Product, error) {
	if m.ShouldFailCreateInvalid {
		return nil, domain.ErrInvalidProductData
	}
	m.LastCreatedByID = createdByID
	p := m.MockProduct
	p.Name, p.Price, p.Category, p.Subcategory, p.CreatedByID = name, price, category, subcategory, createdByID
	return &p, nil
}

func (m *MockProductUsecase) GetProducts(ctx context.Context, page, limit int) (*entity.ProductPage, bool, error) {
	m.LastPage, m.LastLimit = page, limit
	if m.ShouldTimeout {
		<-ctx.Done()
		return nil, false, ctx.Err()
	}
	if m.ShouldFailGetProducts {
		return nil, false, errors.New("connection refused")
	}
	return &entity.ProductPage{
		Products: []entity.ProductWithReactions{{Product: m.MockProduct, LikeCount: 3, DislikeCount: 1}},
		Pagination: entity.Pagination{
			Page: 1, Limit: 10, TotalPages: 1, TotalItems: 1,
		},
	}, m.ServeFromCache, nil
}

func (m *MockProductUsecase) SearchProducts(ctx context.Context, filter entity.ProductSearchFilter) ([]*entity.Product, error) {
	m.LastFilter = filter
	if m.ShouldFailSearch {
		return nil, errors.New("search failed")
	}
	return []*entity.Product{&m.MockProduct}, nil
}
