package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/identity/dto"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AssignRoleCommand struct {
	UserID  uint
	Role    string
	ActorID uint
}

type AssignRoleUseCase struct {
	userRepo identity.UserRepository
	logger   logger.Interface
}

func NewAssignRoleUseCase(userRepo identity.UserRepository, logger logger.Interface) *AssignRoleUseCase {
	return &AssignRoleUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *AssignRoleUseCase) Execute(ctx context.Context, cmd AssignRoleCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing assign role use case", "user_id", cmd.UserID, "role", cmd.Role, "actor_id", cmd.ActorID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	role, err := identity.NewRoleName(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	actor, err := uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		return nil, errors.NewNotFoundError("actor not found")
	}
	if !actor.HasRole(identity.RoleAdmin) {
		return nil, errors.NewForbiddenError("only administrators may assign roles")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	if err := u.AssignRole(role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user role", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("role assigned successfully", "user_id", u.ID(), "role", role)

	return dto.ToUserDTO(u), nil
}
