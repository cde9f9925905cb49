package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

type IReactionUseCase interface {
	ToggleReaction(ctx context.Context, productID, userID string, requested entity.ReactionType) (*entity.ToggleResult, error)
	CountReactions(ctx context.Context, productID string) (entity.ReactionCounts, error)
}
