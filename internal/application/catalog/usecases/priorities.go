package usecases

import (
	"context"
	"fmt"

	stderrors "errors"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type PriorityResult struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

func toPriorityResult(p *catalog.Priority) *PriorityResult {
	return &PriorityResult{
		ID:   p.ID(),
		Name: p.Name(),
		Rank: p.Rank(),
	}
}

type CreatePriorityCommand struct {
	Name    string
	Rank    int
	ActorID uint
}

type CreatePriorityUseCase struct {
	priorityRepo catalog.PriorityRepository
	userRepo     identity.UserRepository
	logger       logger.Interface
}

func NewCreatePriorityUseCase(
	priorityRepo catalog.PriorityRepository,
	userRepo identity.UserRepository,
	logger logger.Interface,
) *CreatePriorityUseCase {
	return &CreatePriorityUseCase{
		priorityRepo: priorityRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *CreatePriorityUseCase) Execute(ctx context.Context, cmd CreatePriorityCommand) (*PriorityResult, error) {
	if err := requireAdmin(ctx, uc.userRepo, cmd.ActorID); err != nil {
		return nil, err
	}

	priority, err := catalog.NewPriority(cmd.Name, cmd.Rank)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.priorityRepo.Save(ctx, priority); err != nil {
		uc.logger.Errorw("failed to save priority", "error", err)
		return nil, errors.NewInternalError("failed to save priority")
	}

	uc.logger.Infow("priority created", "priority_id", priority.ID(), "name", priority.Name())
	return toPriorityResult(priority), nil
}

type UpdatePriorityCommand struct {
	PriorityID uint
	Name       string
	Rank       int
	ActorID    uint
}

type UpdatePriorityUseCase struct {
	priorityRepo catalog.PriorityRepository
	userRepo     identity.UserRepository
	logger       logger.Interface
}

func NewUpdatePriorityUseCase(
	priorityRepo catalog.PriorityRepository,
	userRepo identity.UserRepository,
	logger logger.Interface,
) *UpdatePriorityUseCase {
	return &UpdatePriorityUseCase{
		priorityRepo: priorityRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *UpdatePriorityUseCase) Execute(ctx context.Context, cmd UpdatePriorityCommand) (*PriorityResult, error) {
	if cmd.PriorityID == 0 {
		return nil, errors.NewValidationError("priority ID is required")
	}
	if err := requireAdmin(ctx, uc.userRepo, cmd.ActorID); err != nil {
		return nil, err
	}

	priority, err := uc.priorityRepo.GetByID(ctx, cmd.PriorityID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("priority %d not found", cmd.PriorityID))
	}

	if err := priority.Update(cmd.Name, cmd.Rank); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.priorityRepo.Update(ctx, priority); err != nil {
		uc.logger.Errorw("failed to update priority", "priority_id", cmd.PriorityID, "error", err)
		return nil, errors.NewInternalError("failed to update priority")
	}

	return toPriorityResult(priority), nil
}

type DeletePriorityCommand struct {
	PriorityID uint
	ActorID    uint
}

type DeletePriorityUseCase struct {
	priorityRepo catalog.PriorityRepository
	userRepo     identity.UserRepository
	logger       logger.Interface
}

func NewDeletePriorityUseCase(
	priorityRepo catalog.PriorityRepository,
	userRepo identity.UserRepository,
	logger logger.Interface,
) *DeletePriorityUseCase {
	return &DeletePriorityUseCase{
		priorityRepo: priorityRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *DeletePriorityUseCase) Execute(ctx context.Context, cmd DeletePriorityCommand) error {
	if cmd.PriorityID == 0 {
		return errors.NewValidationError("priority ID is required")
	}
	if err := requireAdmin(ctx, uc.userRepo, cmd.ActorID); err != nil {
		return err
	}

	if _, err := uc.priorityRepo.GetByID(ctx, cmd.PriorityID); err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("priority %d not found", cmd.PriorityID))
	}

	if err := uc.priorityRepo.Delete(ctx, cmd.PriorityID); err != nil {
		if stderrors.Is(err, catalog.ErrInUse) {
			return errors.NewConflictError("priority is referenced by existing tickets")
		}
		uc.logger.Errorw("failed to delete priority", "priority_id", cmd.PriorityID, "error", err)
		return errors.NewInternalError("failed to delete priority")
	}

	uc.logger.Infow("priority deleted", "priority_id", cmd.PriorityID)
	return nil
}

type ListPrioritiesUseCase struct {
	priorityRepo catalog.PriorityRepository
	logger       logger.Interface
}

func NewListPrioritiesUseCase(priorityRepo catalog.PriorityRepository, logger logger.Interface) *ListPrioritiesUseCase {
	return &ListPrioritiesUseCase{
		priorityRepo: priorityRepo,
		logger:       logger,
	}
}

func (uc *ListPrioritiesUseCase) Execute(ctx context.Context) ([]PriorityResult, error) {
	priorities, err := uc.priorityRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list priorities", "error", err)
		return nil, errors.NewInternalError("failed to list priorities")
	}

	result := make([]PriorityResult, 0, len(priorities))
	for _, p := range priorities {
		result = append(result, *toPriorityResult(p))
	}
	return result, nil
}
