package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/infrastructure/persistence/models"
)

// CategoryMapper handles the conversion between category entities and persistence models
type CategoryMapper interface {
	ToEntity(model *models.CategoryModel) (*catalog.Category, error)
	ToModel(entity *catalog.Category) (*models.CategoryModel, error)
	ToEntities(models []*models.CategoryModel) ([]*catalog.Category, error)
}

// CategoryMapperImpl is the concrete implementation of CategoryMapper
type CategoryMapperImpl struct{}

// NewCategoryMapper creates a new category mapper
func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToEntity(model *models.CategoryModel) (*catalog.Category, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := catalog.ReconstructCategory(
		model.ID,
		model.Name,
		model.IsActive,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct category entity: %w", err)
	}

	return entity, nil
}

func (m *CategoryMapperImpl) ToModel(entity *catalog.Category) (*models.CategoryModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.CategoryModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		IsActive:  entity.IsActive(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *CategoryMapperImpl) ToEntities(modelList []*models.CategoryModel) ([]*catalog.Category, error) {
	entities := make([]*catalog.Category, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// PriorityMapper handles the conversion between priority entities and persistence models
type PriorityMapper interface {
	ToEntity(model *models.PriorityModel) (*catalog.Priority, error)
	ToModel(entity *catalog.Priority) (*models.PriorityModel, error)
	ToEntities(models []*models.PriorityModel) ([]*catalog.Priority, error)
}

// PriorityMapperImpl is the concrete implementation of PriorityMapper
type PriorityMapperImpl struct{}

// NewPriorityMapper creates a new priority mapper
func NewPriorityMapper() PriorityMapper {
	return &PriorityMapperImpl{}
}

func (m *PriorityMapperImpl) ToEntity(model *models.PriorityModel) (*catalog.Priority, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := catalog.ReconstructPriority(
		model.ID,
		model.Name,
		model.Rank,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct priority entity: %w", err)
	}

	return entity, nil
}

func (m *PriorityMapperImpl) ToModel(entity *catalog.Priority) (*models.PriorityModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PriorityModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Rank:      entity.Rank(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *PriorityMapperImpl) ToEntities(modelList []*models.PriorityModel) ([]*catalog.Priority, error) {
	entities := make([]*catalog.Priority, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
