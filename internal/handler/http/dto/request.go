package dto

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateProductRequest is the body of product creation.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Subcategory string  `json:"subcategory" binding:"required"`
}

// ReactionRequest is the body of a toggle. The type is checked by the
// usecase so that an invalid value maps to the dedicated error message.
type ReactionRequest struct {
	Type string `json:"type"`
}

// ListProductsQuery holds the listing query string. Values that are not
// positive integers fall back to the defaults.
type ListProductsQuery struct {
	Page  string `form:"page"`
	Limit string `form:"limit"`
}

// SearchProductsQuery holds the search query string.
type SearchProductsQuery struct {
	Q           string `form:"q"`
	Category    string `form:"category"`
	Subcategory string `form:"subcategory"`
	MinPrice    string `form:"minPrice"`
	MaxPrice    string `form:"maxPrice"`
}
