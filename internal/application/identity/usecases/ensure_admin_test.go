package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/errors"
)

func TestEnsureAdmin_CreatesAccount(t *testing.T) {
	userRepo := &mockUserRepository{}
	uc := NewEnsureAdminUseCase(userRepo, &mockHasher{}, &mockLogger{})

	var saved *identity.User
	userRepo.SaveFunc = func(ctx context.Context, u *identity.User) error {
		saved = u
		return u.SetID(1)
	}

	result, err := uc.Execute(context.Background(), EnsureAdminCommand{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "changeme123",
	})
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.Equal(t, uint(1), result.UserID)

	require.NotNil(t, saved)
	assert.True(t, saved.IsSuperuser())
	assert.True(t, saved.IsStaff())
	require.NotNil(t, saved.Role())
	assert.Equal(t, identity.RoleAdmin, *saved.Role())
	assert.Equal(t, "hashed:changeme123", saved.PasswordHash())
}

func TestEnsureAdmin_IdempotentOnExistingAccount(t *testing.T) {
	userRepo := &mockUserRepository{}
	uc := NewEnsureAdminUseCase(userRepo, &mockHasher{}, &mockLogger{})

	existing := storedUser(t, 1, "admin", nil, false)
	userRepo.GetByUsernameFunc = func(ctx context.Context, username string) (*identity.User, error) {
		return existing, nil
	}

	var updated *identity.User
	userRepo.UpdateFunc = func(ctx context.Context, u *identity.User) error {
		updated = u
		return nil
	}
	userRepo.SaveFunc = func(ctx context.Context, u *identity.User) error {
		t.Fatal("existing account must be updated, not recreated")
		return nil
	}

	result, err := uc.Execute(context.Background(), EnsureAdminCommand{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "newsecret99",
	})
	require.NoError(t, err)

	assert.False(t, result.Created)
	assert.Equal(t, uint(1), result.UserID)

	require.NotNil(t, updated)
	assert.Equal(t, "hashed:newsecret99", updated.PasswordHash(), "password is reset on every run")
	assert.True(t, updated.IsSuperuser())
	assert.True(t, updated.IsStaff())
}

func TestEnsureAdmin_MissingCredentials(t *testing.T) {
	uc := NewEnsureAdminUseCase(&mockUserRepository{}, &mockHasher{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), EnsureAdminCommand{Username: "admin"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
