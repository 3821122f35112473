package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a message thread between a buyer and a seller about one
// product. Creation goes through lookup-before-create on the
// (product, buyer, seller) triple.
//
// TODO: add a unique index on (product_id, buyer_id, seller_id); two
// concurrent create calls can currently race and produce duplicates.
type Conversation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	BuyerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"buyer_id"`
	SellerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"seller_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Buyer     User      `gorm:"foreignKey:BuyerID" json:"-"`
	Seller    User      `gorm:"foreignKey:SellerID" json:"-"`
}

// IsParticipant reports whether userID is one of the two parties.
func (c *Conversation) IsParticipant(userID uuid.UUID) bool {
	return c.BuyerID == userID || c.SellerID == userID
}

// Message is a single chat message. Messages are append-only; they are never
// edited or deleted.
type Message struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index" json:"conversation_id"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	Text           string    `gorm:"type:text;not null" json:"text"`
	CreatedAt      time.Time `json:"created_at"`
	Sender         User      `gorm:"foreignKey:SenderID" json:"-"`
}
