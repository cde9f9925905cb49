package dto

import (
	"time"

	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// RegisterResponse is returned by registration.
type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(*u))
	}
	return out
}

// ReactionResponse is the payload of a toggle. CurrentType is null after a
// removal.
type ReactionResponse struct {
	CurrentType *entity.ReactionType `json:"currentType"`
	Likes       int64                `json:"likes"`
	Dislikes    int64                `json:"dislikes"`
}

func ToReactionResponse(r *entity.ToggleResult) ReactionResponse {
	return ReactionResponse{
		CurrentType: r.CurrentType,
		Likes:       r.Counts.Likes,
		Dislikes:    r.Counts.Dislikes,
	}
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Products []*entity.Product `json:"products"`
}
