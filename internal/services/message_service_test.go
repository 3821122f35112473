package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varsitymarket/varsity-market-backend/internal/models"
)

func TestGetOrCreateConversationIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)

	seller := createTestUser(t, db, "Bob Williams", "bob@wits.ac.za")
	buyer := createTestUser(t, db, "Alice Johnson", "alice@uct.ac.za")
	product := createTestProduct(t, db, seller.ID, "Calculus Textbook", 750)

	first, created, err := svc.GetOrCreateConversation(product.ID, buyer.ID, seller.ID)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.GetOrCreateConversation(product.ID, buyer.ID, seller.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.Conversation{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetOrCreateConversationUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)

	buyer := createTestUser(t, db, "Alice Johnson", "alice@uct.ac.za")

	_, _, err := svc.GetOrCreateConversation(uuid.New(), buyer.ID, uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSendMessageAppendsChronologically(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)

	seller := createTestUser(t, db, "Bob Williams", "bob@wits.ac.za")
	buyer := createTestUser(t, db, "Alice Johnson", "alice@uct.ac.za")
	product := createTestProduct(t, db, seller.ID, "Calculus Textbook", 750)

	conv, _, err := svc.GetOrCreateConversation(product.ID, buyer.ID, seller.ID)
	require.NoError(t, err)

	texts := []string{"Is this still available?", "Yes, it is!", "Could you do R650?"}
	senders := []uuid.UUID{buyer.ID, seller.ID, buyer.ID}
	for i, text := range texts {
		msg, err := svc.SendMessage(conv.ID, senders[i], text)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, msg.ID)
		// created_at granularity can collapse ties; space the inserts out.
		db.Model(msg).Update("created_at", time.Now().Add(time.Duration(i)*time.Second))
	}

	messages, err := svc.GetMessages(conv.ID, buyer.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for i, text := range texts {
		assert.Equal(t, text, messages[i].Text)
		assert.Equal(t, senders[i], messages[i].SenderID)
	}
}

func TestSendMessageRejectsNonParticipant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)

	seller := createTestUser(t, db, "Bob Williams", "bob@wits.ac.za")
	buyer := createTestUser(t, db, "Alice Johnson", "alice@uct.ac.za")
	stranger := createTestUser(t, db, "Charlie Brown", "charlie@sun.ac.za")
	product := createTestProduct(t, db, seller.ID, "Calculus Textbook", 750)

	conv, _, err := svc.GetOrCreateConversation(product.ID, buyer.ID, seller.ID)
	require.NoError(t, err)

	_, err = svc.SendMessage(conv.ID, buyer.ID, "hello")
	require.NoError(t, err)

	_, err = svc.SendMessage(conv.ID, stranger.ID, "let me in")
	assert.ErrorIs(t, err, ErrNotParticipant)

	// The thread must be unchanged by the rejected send.
	var count int64
	db.Model(&models.Message{}).Where("conversation_id = ?", conv.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSendMessageValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)

	seller := createTestUser(t, db, "Bob Williams", "bob@wits.ac.za")
	buyer := createTestUser(t, db, "Alice Johnson", "alice@uct.ac.za")
	product := createTestProduct(t, db, seller.ID, "Calculus Textbook", 750)
	conv, _, err := svc.GetOrCreateConversation(product.ID, buyer.ID, seller.ID)
	require.NoError(t, err)

	_, err = svc.SendMessage(conv.ID, buyer.ID, "")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.SendMessage(uuid.New(), buyer.ID, "anyone home?")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestGetMessagesRequiresParticipant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)

	seller := createTestUser(t, db, "Bob Williams", "bob@wits.ac.za")
	buyer := createTestUser(t, db, "Alice Johnson", "alice@uct.ac.za")
	stranger := createTestUser(t, db, "Charlie Brown", "charlie@sun.ac.za")
	product := createTestProduct(t, db, seller.ID, "Calculus Textbook", 750)
	conv, _, err := svc.GetOrCreateConversation(product.ID, buyer.ID, seller.ID)
	require.NoError(t, err)

	_, err = svc.GetMessages(conv.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestListConversationsAnnotations(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)

	seller := createTestUser(t, db, "Bob Williams", "bob@wits.ac.za")
	buyer := createTestUser(t, db, "Alice Johnson", "alice@uct.ac.za")
	outsider := createTestUser(t, db, "Diana Prince", "diana@up.ac.za")
	product := createTestProduct(t, db, seller.ID, "Calculus Textbook", 750)

	conv, _, err := svc.GetOrCreateConversation(product.ID, buyer.ID, seller.ID)
	require.NoError(t, err)
	_, err = svc.SendMessage(conv.ID, buyer.ID, "first")
	require.NoError(t, err)
	last, err := svc.SendMessage(conv.ID, seller.ID, "second")
	require.NoError(t, err)
	db.Model(last).Update("created_at", time.Now().Add(time.Second))

	// Buyer sees the seller as counterpart.
	summaries, err := svc.ListConversations(buyer.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, seller.ID, summaries[0].Counterpart.ID)
	require.NotNil(t, summaries[0].Product)
	assert.Equal(t, product.ID, summaries[0].Product.ID)
	require.NotNil(t, summaries[0].LastMessage)
	assert.Equal(t, "second", summaries[0].LastMessage.Text)

	// Seller sees the buyer as counterpart.
	summaries, err = svc.ListConversations(seller.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, buyer.ID, summaries[0].Counterpart.ID)

	// Outsiders see nothing.
	summaries, err = svc.ListConversations(outsider.ID)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestListConversationsToleratesDeletedProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db)

	seller := createTestUser(t, db, "Bob Williams", "bob@wits.ac.za")
	buyer := createTestUser(t, db, "Alice Johnson", "alice@uct.ac.za")
	product := createTestProduct(t, db, seller.ID, "Calculus Textbook", 750)

	_, _, err := svc.GetOrCreateConversation(product.ID, buyer.ID, seller.ID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&product).Error)

	summaries, err := svc.ListConversations(buyer.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Nil(t, summaries[0].Product)
}
