package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/varsitymarket/varsity-market-backend/internal/database"
	"github.com/varsitymarket/varsity-market-backend/internal/dto"
	"github.com/varsitymarket/varsity-market-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("not a participant of this conversation")
	ErrEmptyMessage         = errors.New("message text cannot be empty")
)

type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

// ListConversations returns every conversation the user takes part in, each
// annotated with the counterpart user, the referenced product, and the most
// recent message. A conversation whose product has since been deleted is
// still listed, with a nil product.
func (s *MessageService) ListConversations(userID uuid.UUID) ([]dto.ConversationSummary, error) {
	var conversations []models.Conversation
	err := s.db.Scopes(database.ForParticipant(userID)).
		Preload("Buyer").
		Preload("Seller").
		Order("updated_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ConversationSummary, 0, len(conversations))
	for i := range conversations {
		conv := &conversations[i]

		counterpart := conv.Buyer
		if conv.BuyerID == userID {
			counterpart = conv.Seller
		}

		summary := dto.ConversationSummary{
			ID:          conv.ID,
			ProductID:   conv.ProductID,
			BuyerID:     conv.BuyerID,
			SellerID:    conv.SellerID,
			Counterpart: UserToResponse(&counterpart),
			UpdatedAt:   conv.UpdatedAt,
		}

		var product models.Product
		if err := s.db.First(&product, "id = ?", conv.ProductID).Error; err == nil {
			resp := ProductToResponse(&product)
			summary.Product = &resp
		}

		var last models.Message
		if err := s.db.Where("conversation_id = ?", conv.ID).
			Order("created_at DESC").
			First(&last).Error; err == nil {
			summary.LastMessage = &dto.MessageResponse{
				ID:             last.ID,
				ConversationID: last.ConversationID,
				SenderID:       last.SenderID,
				Text:           last.Text,
				CreatedAt:      last.CreatedAt,
			}
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// GetMessages returns the conversation's messages in chronological order.
// The caller must be a participant.
func (s *MessageService) GetMessages(conversationID, userID uuid.UUID) ([]dto.MessageResponse, error) {
	conv, err := s.conversation(conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.IsParticipant(userID) {
		return nil, ErrNotParticipant
	}

	var messages []models.Message
	err = s.db.Where("conversation_id = ?", conversationID).
		Preload("Sender").
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		m := &messages[i]
		out = append(out, dto.MessageResponse{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			SenderID:       m.SenderID,
			SenderName:     m.Sender.Name,
			SenderAvatar:   m.Sender.AvatarURL,
			Text:           m.Text,
			CreatedAt:      m.CreatedAt,
		})
	}
	return out, nil
}

// SendMessage appends a message to the conversation. The sender must be a
// participant and the text non-empty.
func (s *MessageService) SendMessage(conversationID, senderID uuid.UUID, text string) (*models.Message, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}

	conv, err := s.conversation(conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.IsParticipant(senderID) {
		return nil, ErrNotParticipant
	}

	message := models.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
	}

	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}

	s.db.Model(conv).Update("updated_at", time.Now())

	return &message, nil
}

// GetOrCreateConversation looks up the conversation for the
// (product, buyer, seller) triple and creates it with an empty message list
// when absent. The returned bool reports whether a new conversation was
// created.
func (s *MessageService) GetOrCreateConversation(productID, buyerID, sellerID uuid.UUID) (*models.Conversation, bool, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		return nil, false, ErrProductNotFound
	}

	var existing models.Conversation
	err := s.db.Where("product_id = ? AND buyer_id = ? AND seller_id = ?",
		productID, buyerID, sellerID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}

	conv := models.Conversation{
		ID:        uuid.New(),
		ProductID: productID,
		BuyerID:   buyerID,
		SellerID:  sellerID,
	}
	if err := s.db.Create(&conv).Error; err != nil {
		return nil, false, err
	}
	return &conv, true, nil
}

func (s *MessageService) conversation(id uuid.UUID) (*models.Conversation, error) {
	var conv models.Conversation
	if err := s.db.First(&conv, "id = ?", id).Error; err != nil {
		return nil, ErrConversationNotFound
	}
	return &conv, nil
}
