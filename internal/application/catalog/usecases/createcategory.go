package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateCategoryCommand struct {
	Name    string
	ActorID uint
}

type CategoryResult struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type CreateCategoryUseCase struct {
	categoryRepo catalog.CategoryRepository
	userRepo     identity.UserRepository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(
	categoryRepo catalog.CategoryRepository,
	userRepo identity.UserRepository,
	logger logger.Interface,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CategoryResult, error) {
	if err := requireAdmin(ctx, uc.userRepo, cmd.ActorID); err != nil {
		return nil, err
	}

	category, err := catalog.NewCategory(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if existing, err := uc.categoryRepo.GetByName(ctx, category.Name()); err == nil && existing != nil {
		return nil, errors.NewConflictError("category already exists")
	}

	if err := uc.categoryRepo.Save(ctx, category); err != nil {
		uc.logger.Errorw("failed to save category", "error", err)
		return nil, errors.NewInternalError("failed to save category")
	}

	uc.logger.Infow("category created", "category_id", category.ID(), "name", category.Name())

	return toCategoryResult(category), nil
}

func toCategoryResult(c *catalog.Category) *CategoryResult {
	return &CategoryResult{
		ID:       c.ID(),
		Name:     c.Name(),
		IsActive: c.IsActive(),
	}
}

// requireAdmin loads the actor and rejects everything but an admin or
// superuser. Shared by the catalog admin use cases.
func requireAdmin(ctx context.Context, userRepo identity.UserRepository, actorID uint) error {
	if actorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	actor, err := userRepo.GetByID(ctx, actorID)
	if err != nil {
		return errors.NewNotFoundError("actor not found")
	}
	if !actor.HasRole(identity.RoleAdmin) {
		return errors.NewForbiddenError("administrator role required")
	}
	return nil
}
