package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

// UserStore is the persistence surface UserService needs.
type UserStore interface {
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Create(ctx context.Context, phone, language string, role domain.Role) (*domain.User, error)
	UpdateLanguage(ctx context.Context, id int64, language string) error
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// FindOrCreateByPhone resolves a caller to a user record, registering
// first-time callers as patients. The phone number is the only identity
// available on SMS/USSD/voice channels.
func (s *UserService) FindOrCreateByPhone(ctx context.Context, phone string) (*domain.User, error) {
	u, err := s.users.GetByPhone(ctx, phone)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	u, err = s.users.Create(ctx, phone, "English", domain.RolePatient)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	return u, nil
}

func (s *UserService) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return s.users.GetByPhone(ctx, phone)
}

// SetLanguage updates the caller's preferred language, registering them
// first if needed.
func (s *UserService) SetLanguage(ctx context.Context, phone, language string) error {
	u, err := s.FindOrCreateByPhone(ctx, phone)
	if err != nil {
		return err
	}
	return s.users.UpdateLanguage(ctx, u.ID, language)
}

// PreferredLanguage returns the caller's language, defaulting to English
// for unknown callers rather than failing the request.
func (s *UserService) PreferredLanguage(ctx context.Context, phone string) string {
	u, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		return "English"
	}
	return u.PreferredLanguage
}
