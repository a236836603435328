package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vedran77/whispr/internal/domain"
	"github.com/vedran77/whispr/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Profile returns the caller's own record. The password hash stays inside
// the domain struct and is excluded from serialization.
func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns every registered user except the caller.
func (s *UserService) List(ctx context.Context, exceptID uuid.UUID) ([]domain.User, error) {
	users, err := s.userRepo.ListExcept(ctx, exceptID)
	if err != nil {
		return nil, err
	}

	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
