package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

// UserModel is the users table.
type UserModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

// ProductModel is the products table.
type ProductModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Name        string    `gorm:"not null;index"`
	Price       float64   `gorm:"not null;check:price > 0"`
	Category    string    `gorm:"not null;index:idx_products_category"`
	Subcategory string    `gorm:"not null;index:idx_products_category"`
	CreatedByID string    `gorm:"type:varchar(36);not null"`
	CreatedBy   UserModel `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"not null;index:idx_products_created_at,sort:desc"`
}

func (ProductModel) TableName() string { return "products" }

// ReactionModel is the product_reactions table; one row per (user, product).
type ReactionModel struct {
	ID        string       `gorm:"primaryKey;type:varchar(36)"`
	UserID    string       `gorm:"type:varchar(36);not null;uniqueIndex:uniq_user_product"`
	ProductID string       `gorm:"type:varchar(36);not null;uniqueIndex:uniq_user_product;index:idx_reactions_product_type"`
	Type      string       `gorm:"type:varchar(8);not null;index:idx_reactions_product_type;check:type IN ('LIKE','DISLIKE')"`
	User      UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Product   ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time    `gorm:"not null"`
	UpdatedAt time.Time    `gorm:"not null"`
}

func (ReactionModel) TableName() string { return "product_reactions" }

// AutoMigrate creates or updates the schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{}, &ProductModel{}, &ReactionModel{})
}

func userToModel(u *entity.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserModel) toEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func productToModel(p *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		CreatedByID: p.CreatedByID,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *ProductModel) toEntity() *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Category:    m.Category,
		Subcategory: m.Subcategory,
		CreatedByID: m.CreatedByID,
		CreatedAt:   m.CreatedAt,
	}
}

func reactionToModel(r *entity.Reaction) *ReactionModel {
	return &ReactionModel{
		ID:        r.ID,
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Type:      string(r.Type),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *ReactionModel) toEntity() *entity.Reaction {
	return &entity.Reaction{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Type:      entity.ReactionType(m.Type),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
