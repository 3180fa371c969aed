package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-ticket-api/internal/auth"
	"github.com/spec-kit/support-ticket-api/internal/domain"
	"github.com/spec-kit/support-ticket-api/internal/repository"
)

func TestCreateUserStoresHashedPassword(t *testing.T) {
	var stored *domain.User
	users := &userRepoMock{
		createFn: func(_ context.Context, user *domain.User) error {
			user.ID = 11
			stored = user
			return nil
		},
	}
	svc := NewUserService(users, 4)

	user, err := svc.Create(context.Background(), "  Omar  ", "omar@example.com", "s3cretpw", domain.RoleUser)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(11), user.ID)
	assert.Equal(t, "Omar", stored.Name)
	assert.Equal(t, domain.RoleUser, stored.Role)
	assert.NotEqual(t, "s3cretpw", stored.PasswordHash)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "s3cretpw"))
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(&userRepoMock{}, 4)

	_, err := svc.Create(context.Background(), "Omar", "omar@example.com", "s3cretpw", domain.Role("ADMIN"))
	domainErr := requireDomainError(t, err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestCreateUserDuplicateEmailConflicts(t *testing.T) {
	users := &userRepoMock{
		createFn: func(context.Context, *domain.User) error {
			return repository.ErrDuplicateEmail
		},
	}
	svc := NewUserService(users, 4)

	_, err := svc.Create(context.Background(), "Omar", "omar@example.com", "s3cretpw", domain.RoleUser)
	domainErr := requireDomainError(t, err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, 409, domainErr.HTTPStatus)
}

func TestListUsersReturnsAll(t *testing.T) {
	users := &userRepoMock{
		listFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{{ID: 1}, {ID: 2}}, nil
		},
	}
	svc := NewUserService(users, 4)

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, result, 2)
}
