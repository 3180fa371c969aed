package service

import (
	"context"
	"errors"
	"strings"

	"github.com/spec-kit/support-ticket-api/internal/auth"
	"github.com/spec-kit/support-ticket-api/internal/domain"
	"github.com/spec-kit/support-ticket-api/internal/repository"
	apperrors "github.com/spec-kit/support-ticket-api/pkg/util"
)

// UserService provisions and lists accounts. Accounts are never
// deleted here; referential integrity in the store forbids removing
// anyone who owns tickets, comments or audit entries.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// Create provisions a new account. Email uniqueness is enforced by the
// store inside the insert, so two concurrent calls with the same
// address can never both succeed.
func (s *UserService) Create(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": string(role)})
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("email already in use", map[string]any{"email": email})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// List returns every account.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}
