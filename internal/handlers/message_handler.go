package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/varsitymarket/varsity-market-backend/internal/dto"
	"github.com/varsitymarket/varsity-market-backend/internal/middleware"
	"github.com/varsitymarket/varsity-market-backend/internal/services"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) ListConversations(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	conversations, err := h.messageService.ListConversations(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch conversations",
		})
	}

	return c.JSON(fiber.Map{"conversations": conversations})
}

func (h *MessageHandler) CreateConversation(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	conv, created, err := h.messageService.GetOrCreateConversation(req.ProductID, userID, req.SellerID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create conversation",
		})
	}

	if !created {
		return c.JSON(fiber.Map{
			"message":      "Conversation already exists",
			"conversation": conv,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Conversation created successfully",
		"conversation": conv,
	})
}

func (h *MessageHandler) GetMessages(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	conversationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid conversation ID",
		})
	}

	messages, err := h.messageService.GetMessages(conversationID, userID)
	if err != nil {
		return h.messageError(c, err)
	}

	return c.JSON(fiber.Map{"messages": messages})
}

func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	message, err := h.messageService.SendMessage(req.ConversationID, userID, req.Text)
	if err != nil {
		return h.messageError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Message sent successfully",
		"data":    message,
	})
}

func (h *MessageHandler) messageError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrConversationNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Conversation not found",
		})
	}
	if errors.Is(err, services.ErrNotParticipant) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Not authorized to access this conversation",
		})
	}
	if errors.Is(err, services.ErrEmptyMessage) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
