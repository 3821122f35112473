package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Listing categories.
var Categories = []string{
	"Textbooks",
	"Electronics",
	"Furniture",
	"Clothing",
	"Appliances",
}

// Item conditions, best to worst.
var Conditions = []string{"New", "Like New", "Good", "Fair"}

// Product is an item listed for sale.
type Product struct {
	ID          uuid.UUID                  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string                     `gorm:"not null;size:200" json:"title"`
	Description string                     `gorm:"type:text" json:"description"`
	Price       float64                    `gorm:"not null" json:"price"`
	Category    string                     `gorm:"size:50;index" json:"category"`
	Condition   string                     `gorm:"size:20" json:"condition"`
	ImageURLs   datatypes.JSONSlice[string] `json:"image_urls"`
	SellerID    uuid.UUID                  `gorm:"type:uuid;not null;index" json:"seller_id"`
	University  string                     `gorm:"size:100;index" json:"university"`
	IsSold      bool                       `gorm:"default:false" json:"is_sold"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
	DeletedAt   gorm.DeletedAt             `gorm:"index" json:"-"`
	Seller      User                       `gorm:"foreignKey:SellerID" json:"-"`
}

// ValidCategory reports whether c is one of the fixed listing categories.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// ValidCondition reports whether c is one of the fixed item conditions.
func ValidCondition(c string) bool {
	for _, cond := range Conditions {
		if cond == c {
			return true
		}
	}
	return false
}
