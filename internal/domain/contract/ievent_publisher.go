package contract

import (
	"context"

	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

// ReactionToggledEvent is emitted after a reaction transition commits.
type ReactionToggledEvent struct {
	ProductID   string               `json:"productId"`
	UserID      string               `json:"userId"`
	Status      entity.ToggleStatus  `json:"status"`
	CurrentType *entity.ReactionType `json:"currentType"`
	Likes       int64                `json:"likes"`
	Dislikes    int64                `json:"dislikes"`
}

// IEventPublisher publishes domain events. Publishing is best-effort.
type IEventPublisher interface {
	PublishReactionToggled(ctx context.Context, event ReactionToggledEvent) error
	PublishProductCreated(ctx context.Context, product *entity.Product) error
}
