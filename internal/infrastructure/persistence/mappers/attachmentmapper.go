package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
)

// AttachmentMapper handles the conversion between attachment entities and persistence models
type AttachmentMapper interface {
	ToEntity(model *models.AttachmentModel) (*ticket.Attachment, error)
	ToModel(entity *ticket.Attachment) (*models.AttachmentModel, error)
	ToEntities(models []*models.AttachmentModel) ([]*ticket.Attachment, error)
}

// AttachmentMapperImpl is the concrete implementation of AttachmentMapper
type AttachmentMapperImpl struct{}

// NewAttachmentMapper creates a new attachment mapper
func NewAttachmentMapper() AttachmentMapper {
	return &AttachmentMapperImpl{}
}

func (m *AttachmentMapperImpl) ToEntity(model *models.AttachmentModel) (*ticket.Attachment, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.UploadedByID,
		model.FileName,
		model.ContentType,
		model.Size,
		model.Data,
		time.UnixMilli(model.UploadedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct attachment entity: %w", err)
	}

	return entity, nil
}

func (m *AttachmentMapperImpl) ToModel(entity *ticket.Attachment) (*models.AttachmentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AttachmentModel{
		ID:           entity.ID(),
		TicketID:     entity.TicketID(),
		UploadedByID: entity.UploadedByID(),
		FileName:     entity.FileName(),
		ContentType:  entity.ContentType(),
		Size:         entity.Size(),
		Data:         entity.Data(),
		UploadedAt:   entity.UploadedAt().UnixMilli(),
	}, nil
}

func (m *AttachmentMapperImpl) ToEntities(modelList []*models.AttachmentModel) ([]*ticket.Attachment, error) {
	entities := make([]*ticket.Attachment, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
