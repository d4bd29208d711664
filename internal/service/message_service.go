package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"localhire/internal/cache"
	apperrors "localhire/internal/errors"
	"localhire/internal/model"
	"localhire/internal/repository"
)

// SendMessageInput carries the fields accepted when sending a message. The
// participants' existence is intentionally not verified.
type SendMessageInput struct {
	SenderID      uuid.UUID
	ReceiverID    uuid.UUID
	ApplicationID *uuid.UUID
	Content       string
}

// MessageService handles direct messages and derived conversations.
type MessageService interface {
	// Inbox returns every message the user sent or received, newest-first.
	Inbox(ctx context.Context, userID uuid.UUID) ([]model.Message, error)
	// Conversation returns the thread between two users, oldest-first.
	Conversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]model.Message, error)
	// Conversations returns grouped per-participant summaries for the inbox list.
	Conversations(ctx context.Context, userID uuid.UUID) ([]ConversationSummary, error)
	Send(ctx context.Context, input SendMessageInput) (*model.Message, error)
	// MarkRead sets isRead; calling it on an already-read message is a no-op.
	MarkRead(ctx context.Context, id uuid.UUID) (*model.Message, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	cache       *cache.Client
}

// NewMessageService creates a new message service.
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository, cache *cache.Client) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		cache:       cache,
	}
}

func (s *messageService) Inbox(ctx context.Context, userID uuid.UUID) ([]model.Message, error) {
	messages, err := s.messageRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find messages by user: %w", err)
	}
	return messages, nil
}

func (s *messageService) Conversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]model.Message, error) {
	messages, err := s.messageRepo.FindConversation(ctx, userID, otherUserID)
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	return messages, nil
}

// Conversations groups the user's messages and resolves each counterpart's
// public profile for display.
func (s *messageService) Conversations(ctx context.Context, userID uuid.UUID) ([]ConversationSummary, error) {
	messages, err := s.messageRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find messages by user: %w", err)
	}

	summaries := GroupConversations(messages, userID)
	for i := range summaries {
		other, err := lookupPublicUser(ctx, s.cache, s.userRepo, summaries[i].OtherUserID)
		if err != nil {
			return nil, fmt.Errorf("resolve conversation participant: %w", err)
		}
		summaries[i].OtherUser = other
	}
	return summaries, nil
}

func (s *messageService) Send(ctx context.Context, input SendMessageInput) (*model.Message, error) {
	message := &model.Message{
		SenderID:      input.SenderID,
		ReceiverID:    input.ReceiverID,
		ApplicationID: input.ApplicationID,
		Content:       input.Content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

// MarkRead flips isRead to true. There is no check that the caller is the
// receiver.
func (s *messageService) MarkRead(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	message, err := s.messageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}

	if !message.IsRead {
		message.IsRead = true
		if err := s.messageRepo.Update(ctx, message); err != nil {
			return nil, fmt.Errorf("mark message read: %w", err)
		}
	}
	return message, nil
}
