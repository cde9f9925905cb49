package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/mikiasgoitom/Catalog/internal/domain"
	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Catalog/internal/usecase/contract"
)

// maxToggleAttempts bounds the read-modify-write retries when a concurrent
// toggle on the same (user, product) wins the race.
const maxToggleAttempts = 3

// toggleRetryBase is the first backoff interval between toggle attempts.
const toggleRetryBase = 5 * time.Millisecond

func newToggleBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = toggleRetryBase
	b.RandomizationFactor = 0.5
	b.Multiplier = 2
	b.MaxInterval = 50 * time.Millisecond
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// ReactionUsecase handles the business logic for likes and dislikes on products.
type ReactionUsecase struct {
	reactionRepo contract.IReactionRepository
	invalidator  *ListingInvalidator
	publisher    contract.IEventPublisher
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
}

// NewReactionUsecase creates and returns a new ReactionUsecase instance.
func NewReactionUsecase(
	reactionRepo contract.IReactionRepository,
	invalidator *ListingInvalidator,
	publisher contract.IEventPublisher,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *ReactionUsecase {
	return &ReactionUsecase{
		reactionRepo: reactionRepo,
		invalidator:  invalidator,
		publisher:    publisher,
		uuidgen:      uuidgen,
		logger:       logger,
	}
}

var _ usecasecontract.IReactionUseCase = (*ReactionUsecase)(nil)

// ToggleReaction applies the requested reaction for a user on a product:
//
//	none     + R        -> create R   (created)
//	R        + R        -> delete     (removed)
//	opposite + R        -> flip to R  (updated)
//
// The returned counts reflect the state after the transition.
func (u *ReactionUsecase) ToggleReaction(ctx context.Context, productID, userID string, requested entity.ReactionType) (*entity.ToggleResult, error) {
	if !requested.IsValid() {
		return nil, domain.ErrInvalidReactionType
	}
	if productID == "" || userID == "" {
		return nil, fmt.Errorf("%w: product ID and user ID are required", domain.ErrInvalidInput)
	}

	var (
		status  entity.ToggleStatus
		current *entity.ReactionType
		err     error
	)
	retryBackOff := newToggleBackOff()
	for attempt := 1; attempt <= maxToggleAttempts; attempt++ {
		status, current, err = u.applyTransition(ctx, productID, userID, requested)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrReactionConflict) && !errors.Is(err, domain.ErrReactionStale) {
			return nil, err
		}
		if attempt == maxToggleAttempts {
			break
		}
		metrics.IncToggleRetry()
		u.logger.Warnf("reaction toggle lost a race: product=%s user=%s attempt=%d err=%v", productID, userID, attempt, err)
		if werr := waitBeforeRetry(ctx, retryBackOff); werr != nil {
			return nil, fmt.Errorf("toggle reaction aborted: %w", werr)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to toggle reaction after %d attempts: %w", maxToggleAttempts, err)
	}

	// The transition is committed; purge before anything else can fail.
	u.invalidator.InvalidateListings(ctx, "reaction "+string(status))
	metrics.IncToggle(string(status))

	counts, err := u.CountReactions(ctx, productID)
	if err != nil {
		return nil, err
	}

	result := &entity.ToggleResult{
		Status:      status,
		CurrentType: current,
		Counts:      counts,
	}
	u.publishToggled(ctx, productID, userID, result)
	return result, nil
}

// applyTransition reads the current reaction and performs a single
// conditional write. Conflict and stale errors are returned unwrapped of
// context so the caller can retry.
func (u *ReactionUsecase) applyTransition(ctx context.Context, productID, userID string, requested entity.ReactionType) (entity.ToggleStatus, *entity.ReactionType, error) {
	existing, err := u.reactionRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		if !errors.Is(err, domain.ErrReactionNotFound) {
			return "", nil, fmt.Errorf("failed to retrieve existing reaction: %w", err)
		}
		existing = nil
	}

	switch {
	case existing == nil:
		now := time.Now().UTC()
		reaction := &entity.Reaction{
			ID:        u.uuidgen.NewUUID(),
			UserID:    userID,
			ProductID: productID,
			Type:      requested,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := u.reactionRepo.Create(ctx, reaction); err != nil {
			return "", nil, fmt.Errorf("failed to create reaction: %w", err)
		}
		return entity.ToggleStatusCreated, &requested, nil

	case existing.Type == requested:
		if err := u.reactionRepo.Delete(ctx, existing.ID, existing.Type); err != nil {
			return "", nil, fmt.Errorf("failed to delete reaction: %w", err)
		}
		return entity.ToggleStatusRemoved, nil, nil

	default:
		if err := u.reactionRepo.UpdateType(ctx, existing.ID, existing.Type, requested); err != nil {
			return "", nil, fmt.Errorf("failed to change reaction type: %w", err)
		}
		return entity.ToggleStatusUpdated, &requested, nil
	}
}

// waitBeforeRetry sleeps for the next jittered interval of b, or returns the
// context error if the request ends first.
func waitBeforeRetry(ctx context.Context, b backoff.BackOff) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d := b.NextBackOff()
	if d == backoff.Stop {
		return errors.New("retry backoff exhausted")
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// CountReactions retrieves the total number of likes and dislikes for a product.
func (u *ReactionUsecase) CountReactions(ctx context.Context, productID string) (entity.ReactionCounts, error) {
	var counts entity.ReactionCounts
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := u.reactionRepo.CountByType(gctx, productID, entity.ReactionTypeLike)
		if err != nil {
			return fmt.Errorf("failed to count likes for product %s: %w", productID, err)
		}
		counts.Likes = n
		return nil
	})
	g.Go(func() error {
		n, err := u.reactionRepo.CountByType(gctx, productID, entity.ReactionTypeDislike)
		if err != nil {
			return fmt.Errorf("failed to count dislikes for product %s: %w", productID, err)
		}
		counts.Dislikes = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return entity.ReactionCounts{}, err
	}
	return counts, nil
}

func (u *ReactionUsecase) publishToggled(ctx context.Context, productID, userID string, result *entity.ToggleResult) {
	if u.publisher == nil {
		return
	}
	event := contract.ReactionToggledEvent{
		ProductID:   productID,
		UserID:      userID,
		Status:      result.Status,
		CurrentType: result.CurrentType,
		Likes:       result.Counts.Likes,
		Dislikes:    result.Counts.Dislikes,
	}
	if err := u.publisher.PublishReactionToggled(ctx, event); err != nil {
		u.logger.Warnf("failed to publish reaction event for product %s: %v", productID, err)
	}
}
