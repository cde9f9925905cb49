package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

const (
	ReactionToggledSubject = "catalog.reaction.toggled"
	ProductCreatedSubject  = "catalog.product.created"
)

// Publisher emits catalog events on core NATS subjects.
type Publisher struct {
	nc     *nats.Conn
	logger *zap.Logger
}

var _ contract.IEventPublisher = (*Publisher)(nil)

func NewPublisher(url string, logger *zap.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name("catalog-api"),
		nats.Timeout(5 * time.Second),
		nats.MaxReconnects(-1),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			subject := ""
			if sub != nil {
				subject = sub.Subject
			}
			logger.Error("NATS error", zap.String("subject", subject), zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	logger.Info("Successfully connected to NATS", zap.String("url", nc.ConnectedUrl()))
	return &Publisher{nc: nc, logger: logger}, nil
}

func (p *Publisher) PublishReactionToggled(ctx context.Context, event contract.ReactionToggledEvent) error {
	return p.publish(ReactionToggledSubject, event, zap.String("product_id", event.ProductID))
}

func (p *Publisher) PublishProductCreated(ctx context.Context, product *entity.Product) error {
	return p.publish(ProductCreatedSubject, product, zap.String("product_id", product.ID))
}

func (p *Publisher) publish(subject string, payload interface{}, fields ...zap.Field) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", subject, err)
	}
	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish NATS message for %s: %w", subject, err)
	}
	p.logger.Debug("Published NATS message", append(fields, zap.String("subject", subject))...)
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *Publisher) Close() {
	if p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
	}
}
