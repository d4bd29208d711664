package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"localhire/internal/service"
)

// MessageHandler handles direct-message endpoints.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendMessageRequest represents a message submission.
type SendMessageRequest struct {
	SenderID      uuid.UUID  `json:"senderId" validate:"required"`
	ReceiverID    uuid.UUID  `json:"receiverId" validate:"required"`
	ApplicationID *uuid.UUID `json:"applicationId"`
	Content       string     `json:"content" validate:"required"`
}

// List godoc
// @Summary List a user's messages, or one conversation
// @Description With only userId, returns the user's full message list
// @Description newest-first. With both userId and otherUserId, returns the
// @Description conversation between the two in chronological reading order.
// @Tags messages
// @Produce json
// @Param userId query string true "User ID"
// @Param otherUserId query string false "Other participant's user ID"
// @Success 200 {array} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	userID, hasUser, err := queryID(c, "userId")
	if err != nil {
		return err
	}
	if !hasUser {
		return badRequest("userId is required", "MISSING_USER_ID")
	}

	otherUserID, hasOther, err := queryID(c, "otherUserId")
	if err != nil {
		return err
	}

	if hasOther {
		messages, err := h.messageService.Conversation(ctx, userID, otherUserID)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, messages)
	}

	messages, err := h.messageService.Inbox(ctx, userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, messages)
}

// Conversations godoc
// @Summary List conversation summaries for a user
// @Tags messages
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {array} service.ConversationSummary
// @Failure 400 {object} errors.ErrorResponse
// @Router /messages/conversations [get]
func (h *MessageHandler) Conversations(c echo.Context) error {
	userID, hasUser, err := queryID(c, "userId")
	if err != nil {
		return err
	}
	if !hasUser {
		return badRequest("userId is required", "MISSING_USER_ID")
	}

	summaries, err := h.messageService.Conversations(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, summaries)
}

// Send godoc
// @Summary Send a message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body SendMessageRequest true "Message data"
// @Success 200 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	var req SendMessageRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	message, err := h.messageService.Send(c.Request().Context(), service.SendMessageInput{
		SenderID:      req.SenderID,
		ReceiverID:    req.ReceiverID,
		ApplicationID: req.ApplicationID,
		Content:       req.Content,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, message)
}

// MarkRead godoc
// @Summary Mark a message as read
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages/{id}/read [put]
func (h *MessageHandler) MarkRead(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	message, err := h.messageService.MarkRead(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, message)
}
