package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/vedran77/whispr/internal/domain"
	"github.com/vedran77/whispr/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository with the same contract as
// the postgres implementation: nil, nil on missing rows and
// ErrDuplicateEmail on a unique-index conflict.
type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
	// when set, every call fails with this error
	failWith error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListExcept(ctx context.Context, id uuid.UUID) ([]domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var users []domain.User
	for _, u := range r.users {
		if u.ID != id {
			users = append(users, *u)
		}
	}
	return users, nil
}

// fakeMessageRepo mimics the store's newest-first listing order.
type fakeMessageRepo struct {
	messages []domain.Message
	failWith error
}

func (r *fakeMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *fakeMessageRepo) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]domain.Message, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []domain.Message
	for _, m := range r.messages {
		if m.RecipientID == recipientID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var errStore = errors.New("store unavailable")
