package entity

import "time"

// ReactionType is the kind of vote a user casts on a product.
type ReactionType string

const (
	ReactionTypeLike    ReactionType = "LIKE"
	ReactionTypeDislike ReactionType = "DISLIKE"
)

// IsValid reports whether t is LIKE or DISLIKE.
func (t ReactionType) IsValid() bool {
	return t == ReactionTypeLike || t == ReactionTypeDislike
}

// ParseReactionType accepts only the exact upper-case wire values.
func ParseReactionType(s string) (ReactionType, bool) {
	t := ReactionType(s)
	return t, t.IsValid()
}

// Reaction is a single user's vote on a product. At most one exists per
// (UserID, ProductID).
type Reaction struct {
	ID        string       `bson:"_id,omitempty" json:"id"`
	UserID    string       `bson:"user_id" json:"userId"`
	ProductID string       `bson:"product_id" json:"productId"`
	Type      ReactionType `bson:"type" json:"type"`
	CreatedAt time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updatedAt"`
}

// ToggleStatus is the outcome of a toggle.
type ToggleStatus string

const (
	ToggleStatusCreated ToggleStatus = "created"
	ToggleStatusUpdated ToggleStatus = "updated"
	ToggleStatusRemoved ToggleStatus = "removed"
)

// ReactionCounts aggregates the reactions of one product.
type ReactionCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

// ToggleResult is returned by a reaction toggle. CurrentType is nil when the
// reaction was removed.
type ToggleResult struct {
	Status      ToggleStatus
	CurrentType *ReactionType
	Counts      ReactionCounts
}
