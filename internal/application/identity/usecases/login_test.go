package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/errors"
)

func storedUser(t *testing.T, id uint, username string, role *identity.RoleName, isSuperuser bool) *identity.User {
	t.Helper()
	now := time.Now()
	u, err := identity.ReconstructUser(id, username, username+"@example.com", "hashed:hunter2hunter2", false, isSuperuser, role, now, now)
	require.NoError(t, err)
	return u
}

func TestLogin_Success(t *testing.T) {
	userRepo := &mockUserRepository{}
	tokens := &mockTokenService{}
	uc := NewLoginUseCase(userRepo, &mockHasher{}, tokens, &mockLogger{})

	role := identity.RoleTechnician
	userRepo.GetByUsernameFunc = func(ctx context.Context, username string) (*identity.User, error) {
		return storedUser(t, 3, username, &role, false), nil
	}

	var generatedRole identity.RoleName
	tokens.GenerateFunc = func(userID uint, r identity.RoleName) (*TokenPair, error) {
		generatedRole = r
		return &TokenPair{AccessToken: "acc", RefreshToken: "ref", ExpiresIn: 900}, nil
	}

	result, err := uc.Execute(context.Background(), LoginCommand{Username: "bob", Password: "hunter2hunter2"})
	require.NoError(t, err)

	assert.Equal(t, "acc", result.AccessToken)
	assert.Equal(t, "ref", result.RefreshToken)
	assert.Equal(t, identity.RoleTechnician, generatedRole)
	require.NotNil(t, result.User)
	assert.Equal(t, uint(3), result.User.ID)
}

func TestLogin_SuperuserGetsAdminTokens(t *testing.T) {
	userRepo := &mockUserRepository{}
	tokens := &mockTokenService{}
	uc := NewLoginUseCase(userRepo, &mockHasher{}, tokens, &mockLogger{})

	userRepo.GetByUsernameFunc = func(ctx context.Context, username string) (*identity.User, error) {
		return storedUser(t, 1, username, nil, true), nil
	}

	var generatedRole identity.RoleName
	tokens.GenerateFunc = func(userID uint, r identity.RoleName) (*TokenPair, error) {
		generatedRole = r
		return &TokenPair{}, nil
	}

	_, err := uc.Execute(context.Background(), LoginCommand{Username: "root", Password: "hunter2hunter2"})
	require.NoError(t, err)
	assert.Equal(t, identity.RoleAdmin, generatedRole)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := &mockUserRepository{}
	uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenService{}, &mockLogger{})

	userRepo.GetByUsernameFunc = func(ctx context.Context, username string) (*identity.User, error) {
		return storedUser(t, 3, username, nil, false), nil
	}

	_, err := uc.Execute(context.Background(), LoginCommand{Username: "bob", Password: "wrong"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepository{}, &mockHasher{}, &mockTokenService{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{Username: "ghost", Password: "whatever1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid username or password")
}

func TestRefreshToken(t *testing.T) {
	tokens := &mockTokenService{}
	uc := NewRefreshTokenUseCase(tokens, &mockLogger{})

	result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "ref"})
	require.NoError(t, err)
	assert.Equal(t, "access2", result.AccessToken)

	tokens.RefreshFunc = func(refreshToken string) (*TokenPair, error) {
		return nil, assert.AnError
	}
	_, err = uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "bad"})
	require.Error(t, err)

	_, err = uc.Execute(context.Background(), RefreshTokenCommand{})
	assert.True(t, errors.IsValidationError(err))
}
