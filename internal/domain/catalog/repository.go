package catalog

import (
	"context"
	"errors"
)

// ErrInUse is returned by Delete when tickets still reference the record.
// Catalog entries are protected, not cascaded.
var ErrInUse = errors.New("catalog entry is referenced by existing tickets")

type CategoryRepository interface {
	Save(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context, activeOnly bool) ([]*Category, error)
}

type PriorityRepository interface {
	Save(ctx context.Context, p *Priority) error
	Update(ctx context.Context, p *Priority) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Priority, error)
	// List returns priorities ordered by ascending rank.
	List(ctx context.Context) ([]*Priority, error)
}
