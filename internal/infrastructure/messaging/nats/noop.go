package nats

import (
	"context"

	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

// NoopPublisher drops every event. It is used when NATS_URL is not set.
type NoopPublisher struct{}

var _ contract.IEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishReactionToggled(context.Context, contract.ReactionToggledEvent) error {
	return nil
}

func (NoopPublisher) PublishProductCreated(context.Context, *entity.Product) error {
	return nil
}
