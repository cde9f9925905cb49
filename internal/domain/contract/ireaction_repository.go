package contract

import (
	"context"

	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

// IReactionRepository defines the interface for reaction data persistence.
// Implementations must enforce uniqueness of (user, product) in the store
// itself; the write methods are conditional so that a caller can detect a
// lost race and retry.
type IReactionRepository interface {
	// FindByUserAndProduct returns domain.ErrReactionNotFound when the pair has no reaction.
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Reaction, error)
	// Create returns domain.ErrReactionConflict if the pair already has a row
	// and domain.ErrProductNotFound if the product does not exist.
	Create(ctx context.Context, reaction *entity.Reaction) error
	// UpdateType flips the row only if it still has type from, else domain.ErrReactionStale.
	UpdateType(ctx context.Context, reactionID string, from, to entity.ReactionType) error
	// Delete removes the row only if it still has type t, else domain.ErrReactionStale.
	Delete(ctx context.Context, reactionID string, t entity.ReactionType) error
	CountByType(ctx context.Context, productID string, t entity.ReactionType) (int64, error)
	// CountsForProducts aggregates counts for several products in one query.
	// Products without reactions are absent from the map.
	CountsForProducts(ctx context.Context, productIDs []string) (map[string]entity.ReactionCounts, error)
}
