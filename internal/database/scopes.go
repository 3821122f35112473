package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySeller returns a GORM scope that filters products by seller.
func BySeller(sellerID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("seller_id = ?", sellerID)
	}
}

// ForParticipant returns a GORM scope that filters conversations to those the
// user takes part in, as buyer or as seller.
func ForParticipant(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("buyer_id = ? OR seller_id = ?", userID, userID)
	}
}
