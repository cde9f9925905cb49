package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/Catalog/internal/domain"
	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

const reactionsCollection = "product_reactions"

// ReactionRepository is the MongoDB implementation of IReactionRepository.
// Uniqueness of (user_id, product_id) comes from the index created by
// EnsureIndexes; rows are hard-deleted so the index never sees tombstones.
type ReactionRepository struct {
	collection *mongo.Collection
	products   *mongo.Collection
}

// NewReactionRepository creates and returns a new ReactionRepository instance.
func NewReactionRepository(db *mongo.Database) *ReactionRepository {
	return &ReactionRepository{
		collection: db.Collection(reactionsCollection),
		products:   db.Collection(productsCollection),
	}
}

var _ contract.IReactionRepository = (*ReactionRepository)(nil)

// FindByUserAndProduct retrieves the reaction of a user on a product.
func (r *ReactionRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Reaction, error) {
	var reaction entity.Reaction
	filter := bson.M{"user_id": userID, "product_id": productID}

	err := r.collection.FindOne(ctx, filter).Decode(&reaction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReactionNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reaction: %w", err)
	}
	return &reaction, nil
}

// Create inserts a reaction. Mongo has no foreign keys, so the product is
// checked first.
func (r *ReactionRepository) Create(ctx context.Context, reaction *entity.Reaction) error {
	n, err := r.products.CountDocuments(ctx, bson.M{"_id": reaction.ProductID})
	if err != nil {
		return fmt.Errorf("failed to check product: %w", err)
	}
	if n == 0 {
		return domain.ErrProductNotFound
	}

	if _, err := r.collection.InsertOne(ctx, reaction); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrReactionConflict
		}
		return fmt.Errorf("failed to create reaction record: %w", err)
	}
	return nil
}

func (r *ReactionRepository) UpdateType(ctx context.Context, reactionID string, from, to entity.ReactionType) error {
	filter := bson.M{"_id": reactionID, "type": from}
	update := bson.M{"$set": bson.M{"type": to, "updated_at": time.Now().UTC()}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update reaction: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReactionStale
	}
	return nil
}

func (r *ReactionRepository) Delete(ctx context.Context, reactionID string, t entity.ReactionType) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": reactionID, "type": t})
	if err != nil {
		return fmt.Errorf("failed to delete reaction: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReactionStale
	}
	return nil
}

// CountByType counts the reactions of one type for a product.
func (r *ReactionRepository) CountByType(ctx context.Context, productID string, t entity.ReactionType) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"product_id": productID, "type": t})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s reactions: %w", t, err)
	}
	return count, nil
}

func (r *ReactionRepository) CountsForProducts(ctx context.Context, productIDs []string) (map[string]entity.ReactionCounts, error) {
	counts := make(map[string]entity.ReactionCounts, len(productIDs))
	if len(productIDs) == 0 {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"product_id": bson.M{"$in": productIDs}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"product_id": "$product_id", "type": "$type"},
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate reaction counts: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID struct {
			ProductID string              `bson:"product_id"`
			Type      entity.ReactionType `bson:"type"`
		} `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode reaction counts: %w", err)
	}

	for _, row := range rows {
		c := counts[row.ID.ProductID]
		switch row.ID.Type {
		case entity.ReactionTypeLike:
			c.Likes = row.Count
		case entity.ReactionTypeDislike:
			c.Dislikes = row.Count
		}
		counts[row.ID.ProductID] = c
	}
	return counts, nil
}
