package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Catalog/internal/domain"
	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

const productsCollection = "products"

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection(productsCollection)}
}

var _ contract.IProductRepository = (*ProductRepository)(nil)

// buildProductSearchFilter creates a BSON filter from the search criteria.
func buildProductSearchFilter(f entity.ProductSearchFilter) bson.M {
	filter := bson.M{}
	if f.Query != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(f.Query), "$options": "i"}
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Subcategory != "" {
		filter["subcategory"] = f.Subcategory
	}

	priceFilter := bson.M{}
	if f.MinPrice != nil {
		priceFilter["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		priceFilter["$lte"] = *f.MaxPrice
	}
	if len(priceFilter) > 0 {
		filter["price"] = priceFilter
	}
	return filter
}

// CreateProduct inserts a new product record into the database.
func (r *ProductRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetProductByID retrieves a single product by its unique id.
func (r *ProductRepository) GetProductByID(ctx context.Context, productID string) (*entity.Product, error) {
	var product entity.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) ListProducts(ctx context.Context, offset, limit int) ([]*entity.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []*entity.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) CountProducts(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to get total product count: %w", err)
	}
	return count, nil
}

func (r *ProductRepository) SearchProducts(ctx context.Context, f entity.ProductSearchFilter) ([]*entity.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, buildProductSearchFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve search results: %w", err)
	}
	defer cursor.Close(ctx)

	products := []*entity.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return products, nil
}
