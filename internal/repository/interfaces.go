package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vedran77/whispr/internal/domain"
)

// ErrDuplicateEmail is returned by UserRepository.Create when the email
// unique index rejects the insert. The index, not the application, decides
// which of two concurrent registrations wins.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListExcept(ctx context.Context, id uuid.UUID) ([]domain.User, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]domain.Message, error)
}
