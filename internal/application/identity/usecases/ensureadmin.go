package usecases

import (
	"context"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type EnsureAdminCommand struct {
	Username string
	Email    string
	Password string
}

type EnsureAdminResult struct {
	UserID  uint   `json:"user_id"`
	Created bool   `json:"created"`
	Message string `json:"message"`
}

// EnsureAdminUseCase is the bootstrap routine behind the ensure-admin
// command. It is idempotent: an existing account keeps its identity but has
// its password reset and its superuser/staff flags re-applied on every run,
// so a lost admin password is recovered by re-running the command.
type EnsureAdminUseCase struct {
	userRepo identity.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewEnsureAdminUseCase(
	userRepo identity.UserRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *EnsureAdminUseCase {
	return &EnsureAdminUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *EnsureAdminUseCase) Execute(ctx context.Context, cmd EnsureAdminCommand) (*EnsureAdminResult, error) {
	if cmd.Username == "" || cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("admin username, email and password are required")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash admin password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err == nil && existing != nil {
		if err := existing.UpdatePasswordHash(hash); err != nil {
			return nil, errors.NewInternalError("failed to update password")
		}
		existing.SetSuperuser(true)
		existing.SetStaff(true)
		if err := existing.AssignRole(identity.RoleAdmin); err != nil {
			return nil, errors.NewInternalError("failed to assign admin role")
		}

		if err := uc.userRepo.Update(ctx, existing); err != nil {
			uc.logger.Errorw("failed to update admin account", "error", err)
			return nil, errors.NewInternalError("failed to update admin account")
		}

		uc.logger.Infow("admin account refreshed", "user_id", existing.ID(), "username", cmd.Username)
		return &EnsureAdminResult{
			UserID:  existing.ID(),
			Created: false,
			Message: "admin account updated",
		}, nil
	}

	u, err := identity.NewUser(cmd.Username, cmd.Email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	u.SetSuperuser(true)
	u.SetStaff(true)
	if err := u.AssignRole(identity.RoleAdmin); err != nil {
		return nil, errors.NewInternalError("failed to assign admin role")
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		uc.logger.Errorw("failed to create admin account", "error", err)
		return nil, errors.NewInternalError("failed to create admin account")
	}

	uc.logger.Infow("admin account created", "user_id", u.ID(), "username", cmd.Username)
	return &EnsureAdminResult{
		UserID:  u.ID(),
		Created: true,
		Message: "admin account created",
	}, nil
}
