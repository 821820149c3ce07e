package usecases

import (
	"context"

	"helpdesk/internal/application/identity/dto"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListTechniciansQuery struct {
	ActorID uint
}

// ListTechniciansUseCase returns the assignable pool for the admin
// assignment form: technician-role users plus the staff fallback.
type ListTechniciansUseCase struct {
	userRepo identity.UserRepository
	logger   logger.Interface
}

func NewListTechniciansUseCase(userRepo identity.UserRepository, logger logger.Interface) *ListTechniciansUseCase {
	return &ListTechniciansUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListTechniciansUseCase) Execute(ctx context.Context, query ListTechniciansQuery) ([]dto.UserDTO, error) {
	if query.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	actor, err := uc.userRepo.GetByID(ctx, query.ActorID)
	if err != nil {
		return nil, errors.NewNotFoundError("actor not found")
	}
	if !actor.HasRole(identity.RoleAdmin) {
		return nil, errors.NewForbiddenError("only administrators may list technicians")
	}

	technicians, err := uc.userRepo.ListEligibleTechnicians(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list eligible technicians", "error", err)
		return nil, errors.NewInternalError("failed to list technicians")
	}

	result := make([]dto.UserDTO, 0, len(technicians))
	for _, u := range technicians {
		result = append(result, *dto.ToUserDTO(u))
	}
	return result, nil
}
