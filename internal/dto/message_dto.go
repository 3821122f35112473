package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConversationRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	SellerID  uuid.UUID `json:"seller_id"`
}

type SendMessageRequest struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	Text           string    `json:"text"`
}

type MessageResponse struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	SenderName     string    `json:"sender_name,omitempty"`
	SenderAvatar   string    `json:"sender_avatar,omitempty"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationSummary is a conversation annotated with the counterpart user,
// the referenced product, and the most recent message. Product is nil when
// the listing has since been deleted.
type ConversationSummary struct {
	ID          uuid.UUID        `json:"id"`
	ProductID   uuid.UUID        `json:"product_id"`
	BuyerID     uuid.UUID        `json:"buyer_id"`
	SellerID    uuid.UUID        `json:"seller_id"`
	Product     *ProductResponse `json:"product,omitempty"`
	Counterpart UserResponse     `json:"counterpart"`
	LastMessage *MessageResponse `json:"last_message,omitempty"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
