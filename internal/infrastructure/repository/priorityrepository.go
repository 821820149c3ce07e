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

type PriorityRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PriorityMapper
}

func NewPriorityRepository(gormDB *gorm.DB) catalog.PriorityRepository {
	return &PriorityRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewPriorityMapper(),
	}
}

func (r *PriorityRepositoryImpl) Save(ctx context.Context, p *catalog.Priority) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map priority entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create priority: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set priority ID: %w", err)
	}

	return nil
}

func (r *PriorityRepositoryImpl) Update(ctx context.Context, p *catalog.Priority) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map priority entity to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PriorityModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"rank":       model.Rank,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update priority: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("priority not found")
	}

	return nil
}

// Delete refuses to remove a priority that tickets still reference, mirroring
// the RESTRICT constraint with a domain error.
func (r *PriorityRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var referencing int64
	err := tx.Model(&models.TicketModel{}).Where("priority_id = ?", id).Count(&referencing).Error
	if err != nil {
		return fmt.Errorf("failed to count tickets referencing priority: %w", err)
	}
	if referencing > 0 {
		return catalog.ErrInUse
	}

	result := tx.Delete(&models.PriorityModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete priority: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("priority not found")
	}

	return nil
}

func (r *PriorityRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Priority, error) {
	var model models.PriorityModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("priority not found")
		}
		return nil, fmt.Errorf("failed to get priority by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PriorityRepositoryImpl) List(ctx context.Context) ([]*catalog.Priority, error) {
	var modelList []*models.PriorityModel

	err := db.GetTxFromContext(ctx, r.db).
		Order("`rank` ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list priorities: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map priority models to entities: %w", err)
	}

	return entities, nil
}
