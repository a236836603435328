package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/whispr/internal/domain"
	"github.com/vedran77/whispr/internal/repository"
)

var ErrRecipientNotFound = errors.New("recipient not found")

type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

type SendMessageInput struct {
	Content string `json:"content"`
}

// Send persists an anonymous message for recipientID. The sender is not
// known to this service and is never recorded.
func (s *MessageService) Send(ctx context.Context, recipientID uuid.UUID, input SendMessageInput) (*domain.Message, error) {
	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}

	msg := &domain.Message{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Content:     input.Content,
		CreatedAt:   time.Now(),
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	return msg, nil
}

// Inbox returns the messages addressed to userID, newest first.
func (s *MessageService) Inbox(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	messages, err := s.messageRepo.ListByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}

	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}
