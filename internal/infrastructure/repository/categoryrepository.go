package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(gormDB *gorm.DB) catalog.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepositoryImpl) Save(ctx context.Context, c *catalog.Category) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map category entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set category ID: %w", err)
	}

	return nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, c *catalog.Category) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map category entity to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CategoryModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"is_active":  model.IsActive,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category not found")
	}

	return nil
}

// Delete refuses to remove a category that tickets still reference. The
// application-level check mirrors the RESTRICT constraint so callers get
// catalog.ErrInUse instead of a driver error.
func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var referencing int64
	err := tx.Model(&models.TicketModel{}).Where("category_id = ?", id).Count(&referencing).Error
	if err != nil {
		return fmt.Errorf("failed to count tickets referencing category: %w", err)
	}
	if referencing > 0 {
		return catalog.ErrInUse
	}

	result := tx.Delete(&models.CategoryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category not found")
	}

	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var model models.CategoryModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CategoryRepositoryImpl) GetByName(ctx context.Context, name string) (*catalog.Category, error) {
	var model models.CategoryModel

	err := db.GetTxFromContext(ctx, r.db).Where("name = ?", name).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CategoryRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*catalog.Category, error) {
	query := db.GetTxFromContext(ctx, r.db).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var modelList []*models.CategoryModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map category models to entities: %w", err)
	}

	return entities, nil
}
