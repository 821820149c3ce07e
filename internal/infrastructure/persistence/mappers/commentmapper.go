package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
)

// CommentMapper handles the conversion between comment entities and persistence models
type CommentMapper interface {
	ToEntity(model *models.CommentModel) (*ticket.Comment, error)
	ToModel(entity *ticket.Comment) (*models.CommentModel, error)
	ToEntities(models []*models.CommentModel) ([]*ticket.Comment, error)
}

// CommentMapperImpl is the concrete implementation of CommentMapper
type CommentMapperImpl struct{}

// NewCommentMapper creates a new comment mapper
func NewCommentMapper() CommentMapper {
	return &CommentMapperImpl{}
}

func (m *CommentMapperImpl) ToEntity(model *models.CommentModel) (*ticket.Comment, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Body,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment entity: %w", err)
	}

	return entity, nil
}

func (m *CommentMapperImpl) ToModel(entity *ticket.Comment) (*models.CommentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.CommentModel{
		ID:        entity.ID(),
		TicketID:  entity.TicketID(),
		AuthorID:  entity.AuthorID(),
		Body:      entity.Body(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *CommentMapperImpl) ToEntities(modelList []*models.CommentModel) ([]*ticket.Comment, error) {
	entities := make([]*ticket.Comment, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
