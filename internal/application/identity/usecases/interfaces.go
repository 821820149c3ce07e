package usecases

import (
	"context"

	"helpdesk/internal/application/identity/dto"
	"helpdesk/internal/domain/identity"
)

// PasswordHasher abstracts the hash algorithm so use cases stay testable.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type TokenService interface {
	Generate(userID uint, role identity.RoleName) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*LoginResult, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, query GetCurrentUserQuery) (*dto.UserDTO, error)
}

type ListTechniciansExecutor interface {
	Execute(ctx context.Context, query ListTechniciansQuery) ([]dto.UserDTO, error)
}

type AssignRoleExecutor interface {
	Execute(ctx context.Context, cmd AssignRoleCommand) (*dto.UserDTO, error)
}

type EnsureAdminExecutor interface {
	Execute(ctx context.Context, cmd EnsureAdminCommand) (*EnsureAdminResult, error)
}
