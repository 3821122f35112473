package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	ImageURLs   []string `json:"image_urls"`
	University  string   `json:"university"`
}

// UpdateProductRequest carries a partial edit; nil fields keep their current
// value. An empty image list keeps the existing images.
type UpdateProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Condition   *string  `json:"condition"`
	ImageURLs   []string `json:"image_urls"`
	University  *string  `json:"university"`
}

type ProductResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Condition    string    `json:"condition"`
	ImageURLs    []string  `json:"image_urls"`
	SellerID     uuid.UUID `json:"seller_id"`
	SellerName   string    `json:"seller_name,omitempty"`
	SellerAvatar string    `json:"seller_avatar,omitempty"`
	University   string    `json:"university"`
	IsSold       bool      `json:"is_sold"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductFilters mirrors the query parameters of GET /api/products.
type ProductFilters struct {
	University string
	Category   string
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
}
