package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListCategoriesQuery struct {
	ActiveOnly bool
}

type ListCategoriesUseCase struct {
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo catalog.CategoryRepository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, query ListCategoriesQuery) ([]CategoryResult, error) {
	categories, err := uc.categoryRepo.List(ctx, query.ActiveOnly)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, errors.NewInternalError("failed to list categories")
	}

	result := make([]CategoryResult, 0, len(categories))
	for _, c := range categories {
		result = append(result, *toCategoryResult(c))
	}
	return result, nil
}
