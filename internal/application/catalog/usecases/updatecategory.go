package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateCategoryCommand struct {
	CategoryID uint
	Name       *string
	IsActive   *bool
	ActorID    uint
}

type UpdateCategoryUseCase struct {
	categoryRepo catalog.CategoryRepository
	userRepo     identity.UserRepository
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(
	categoryRepo catalog.CategoryRepository,
	userRepo identity.UserRepository,
	logger logger.Interface,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*CategoryResult, error) {
	if cmd.CategoryID == 0 {
		return nil, errors.NewValidationError("category ID is required")
	}
	if err := requireAdmin(ctx, uc.userRepo, cmd.ActorID); err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("category %d not found", cmd.CategoryID))
	}

	if cmd.Name != nil {
		if err := category.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.IsActive != nil {
		if *cmd.IsActive {
			category.Activate()
		} else {
			category.Deactivate()
		}
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		uc.logger.Errorw("failed to update category", "category_id", cmd.CategoryID, "error", err)
		return nil, errors.NewInternalError("failed to update category")
	}

	return toCategoryResult(category), nil
}
