package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/shared/logger"
)

type mockCategoryRepository struct {
	SaveFunc      func(ctx context.Context, c *catalog.Category) error
	UpdateFunc    func(ctx context.Context, c *catalog.Category) error
	DeleteFunc    func(ctx context.Context, id uint) error
	GetByIDFunc   func(ctx context.Context, id uint) (*catalog.Category, error)
	GetByNameFunc func(ctx context.Context, name string) (*catalog.Category, error)
	ListFunc      func(ctx context.Context, activeOnly bool) ([]*catalog.Category, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *catalog.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockCategoryRepository) GetByName(ctx context.Context, name string) (*catalog.Category, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockCategoryRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

type mockPriorityRepository struct {
	SaveFunc    func(ctx context.Context, p *catalog.Priority) error
	UpdateFunc  func(ctx context.Context, p *catalog.Priority) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*catalog.Priority, error)
	ListFunc    func(ctx context.Context) ([]*catalog.Priority, error)
}

func (m *mockPriorityRepository) Save(ctx context.Context, p *catalog.Priority) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPriorityRepository) Update(ctx context.Context, p *catalog.Priority) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPriorityRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPriorityRepository) GetByID(ctx context.Context, id uint) (*catalog.Priority, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockPriorityRepository) List(ctx context.Context) ([]*catalog.Priority, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*identity.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *identity.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *identity.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*identity.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	return nil, fmt.Errorf("not found")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	return nil, fmt.Errorf("not found")
}

func (m *mockUserRepository) ListEligibleTechnicians(ctx context.Context) ([]*identity.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
