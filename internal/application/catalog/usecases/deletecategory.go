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

type DeleteCategoryCommand struct {
	CategoryID uint
	ActorID    uint
}

// DeleteCategoryUseCase removes an unreferenced category. The store protects
// categories still referenced by tickets; that surfaces as a conflict, not a
// cascade.
type DeleteCategoryUseCase struct {
	categoryRepo catalog.CategoryRepository
	userRepo     identity.UserRepository
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(
	categoryRepo catalog.CategoryRepository,
	userRepo identity.UserRepository,
	logger logger.Interface,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) error {
	if cmd.CategoryID == 0 {
		return errors.NewValidationError("category ID is required")
	}
	if err := requireAdmin(ctx, uc.userRepo, cmd.ActorID); err != nil {
		return err
	}

	if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("category %d not found", cmd.CategoryID))
	}

	if err := uc.categoryRepo.Delete(ctx, cmd.CategoryID); err != nil {
		if stderrors.Is(err, catalog.ErrInUse) {
			return errors.NewConflictError("category is referenced by existing tickets")
		}
		uc.logger.Errorw("failed to delete category", "category_id", cmd.CategoryID, "error", err)
		return errors.NewInternalError("failed to delete category")
	}

	uc.logger.Infow("category deleted", "category_id", cmd.CategoryID)
	return nil
}
