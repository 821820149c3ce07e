package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between user domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*identity.User, error)
	ToModel(entity *identity.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*identity.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*identity.User, error) {
	if model == nil {
		return nil, nil
	}

	var role *identity.RoleName
	if model.Role != nil {
		r, err := identity.NewRoleName(*model.Role)
		if err != nil {
			return nil, fmt.Errorf("failed to create role name value object: %w", err)
		}
		role = &r
	}

	entity, err := identity.ReconstructUser(
		model.ID,
		model.Username,
		model.Email,
		model.PasswordHash,
		model.IsStaff,
		model.IsSuperuser,
		role,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *identity.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	var role *string
	if r := entity.Role(); r != nil {
		s := r.String()
		role = &s
	}

	return &models.UserModel{
		ID:           entity.ID(),
		Username:     entity.Username(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		IsStaff:      entity.IsStaff(),
		IsSuperuser:  entity.IsSuperuser(),
		Role:         role,
		CreatedAt:    entity.CreatedAt().UnixMilli(),
		UpdatedAt:    entity.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *UserMapperImpl) ToEntities(modelList []*models.UserModel) ([]*identity.User, error) {
	entities := make([]*identity.User, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
