package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mikiasgoitom/Catalog/internal/domain"
	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

// ReactionRepository stores reactions in product_reactions. The unique index
// uniq_user_product and the foreign keys do the integrity work; every write
// is a single conditional statement.
type ReactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

var _ contract.IReactionRepository = (*ReactionRepository)(nil)

func (r *ReactionRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Reaction, error) {
	var m ReactionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReactionNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reaction: %w", err)
	}
	return m.toEntity(), nil
}

func (r *ReactionRepository) Create(ctx context.Context, reaction *entity.Reaction) error {
	err := r.db.WithContext(ctx).Omit("User", "Product").Create(reactionToModel(reaction)).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrReactionConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		// The user comes from a verified token, so a dangling key is the product.
		return domain.ErrProductNotFound
	default:
		return fmt.Errorf("failed to create reaction: %w", err)
	}
}

func (r *ReactionRepository) UpdateType(ctx context.Context, reactionID string, from, to entity.ReactionType) error {
	res := r.db.WithContext(ctx).
		Model(&ReactionModel{}).
		Where("id = ? AND type = ?", reactionID, string(from)).
		Updates(map[string]interface{}{"type": string(to), "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return fmt.Errorf("failed to update reaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrReactionStale
	}
	return nil
}

func (r *ReactionRepository) Delete(ctx context.Context, reactionID string, t entity.ReactionType) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND type = ?", reactionID, string(t)).
		Delete(&ReactionModel{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete reaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrReactionStale
	}
	return nil
}

func (r *ReactionRepository) CountByType(ctx context.Context, productID string, t entity.ReactionType) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&ReactionModel{}).
		Where("product_id = ? AND type = ?", productID, string(t)).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count %s reactions: %w", t, err)
	}
	return n, nil
}

type reactionCountRow struct {
	ProductID string
	Likes     int64
	Dislikes  int64
}

func (r *ReactionRepository) CountsForProducts(ctx context.Context, productIDs []string) (map[string]entity.ReactionCounts, error) {
	counts := make(map[string]entity.ReactionCounts, len(productIDs))
	if len(productIDs) == 0 {
		return counts, nil
	}

	var rows []reactionCountRow
	err := r.db.WithContext(ctx).
		Model(&ReactionModel{}).
		Select("product_id, "+
			"COUNT(*) FILTER (WHERE type = 'LIKE') AS likes, "+
			"COUNT(*) FILTER (WHERE type = 'DISLIKE') AS dislikes").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate reaction counts: %w", err)
	}
	for _, row := range rows {
		counts[row.ProductID] = entity.ReactionCounts{Likes: row.Likes, Dislikes: row.Dislikes}
	}
	return counts, nil
}
