package entity

import "time"

// Product is a catalog item.
type Product struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Price       float64   `bson:"price" json:"price"`
	Category    string    `bson:"category" json:"category"`
	Subcategory string    `bson:"subcategory" json:"subcategory"`
	CreatedByID string    `bson:"created_by_id" json:"createdById"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// ProductWithReactions is a product annotated with its reaction counts, as
// served by the listing endpoint.
type ProductWithReactions struct {
	Product
	LikeCount    int64 `json:"likeCount"`
	DislikeCount int64 `json:"dislikeCount"`
}

// Pagination describes a page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	TotalItems int64 `json:"totalItems"`
}

// ProductPage is the listing payload. It is also the value stored in the
// listing cache, so counts are denormalized into it.
type ProductPage struct {
	Products   []ProductWithReactions `json:"products"`
	Pagination Pagination             `json:"pagination"`
}

// ProductSearchFilter holds the optional search criteria. Nil or empty fields
// are ignored.
type ProductSearchFilter struct {
	Query       string
	Category    string
	Subcategory string
	MinPrice    *float64
	MaxPrice    *float64
}
