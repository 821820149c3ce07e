package usecases

import "context"

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*CategoryResult, error)
}

type UpdateCategoryExecutor interface {
	Execute(ctx context.Context, cmd UpdateCategoryCommand) (*CategoryResult, error)
}

type DeleteCategoryExecutor interface {
	Execute(ctx context.Context, cmd DeleteCategoryCommand) error
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context, query ListCategoriesQuery) ([]CategoryResult, error)
}

type CreatePriorityExecutor interface {
	Execute(ctx context.Context, cmd CreatePriorityCommand) (*PriorityResult, error)
}

type UpdatePriorityExecutor interface {
	Execute(ctx context.Context, cmd UpdatePriorityCommand) (*PriorityResult, error)
}

type DeletePriorityExecutor interface {
	Execute(ctx context.Context, cmd DeletePriorityCommand) error
}

type ListPrioritiesExecutor interface {
	Execute(ctx context.Context) ([]PriorityResult, error)
}
