package mocks

import (
	"context"

	"github.com/mikiasgoitom/Catalog/internal/domain"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Catalog/internal/usecase/contract"
)

// MockReactionUsecase returns a canned toggle result or a configured error.
type MockReactionUsecase struct {
	Err    error
	Result entity.ToggleResult

	Calls         int
	LastProductID string
	LastUserID    string
	LastType      entity.ReactionType
}

var _ usecasecontract.IReactionUseCase = (*MockReactionUsecase)(nil)

func NewMockReactionUsecase() *MockReactionUsecase {
	like := entity.ReactionTypeLike
	return &MockReactionUsecase{
		Result: entity.ToggleResult{
			Status:      entity.ToggleStatusCreated,
			CurrentType: &like,
			Counts:      entity.ReactionCounts{Likes: 1},
		},
	}
}

func (m *MockReactionUsecase) ToggleReaction(ctx context.Context, productID, userID string, requested entity.ReactionType) (*entity.ToggleResult, error) {
	m.Calls++
	m.LastProductID, m.LastUserID, m.LastType = productID, userID, requested
	if !requested.IsValid() {
		return nil, domain.ErrInvalidReactionType
	}
	if m.Err != nil {
		return nil, m.Err
	}
	r := m.Result
	return &r, nil
}

func (m *MockReactionUsecase) CountReactions(ctx context.Context, productID string) (entity.ReactionCounts, error) {
	if m.Err != nil {
		return entity.ReactionCounts{}, m.Err
	}
	return m.Result.Counts, nil
}
