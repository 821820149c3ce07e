package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// StatusHistoryMapper handles the conversion between status history entities and persistence models
type StatusHistoryMapper interface {
	ToEntity(model *models.StatusHistoryModel) (*ticket.StatusHistory, error)
	ToModel(entity *ticket.StatusHistory) (*models.StatusHistoryModel, error)
	ToEntities(models []*models.StatusHistoryModel) ([]*ticket.StatusHistory, error)
}

// StatusHistoryMapperImpl is the concrete implementation of StatusHistoryMapper
type StatusHistoryMapperImpl struct{}

// NewStatusHistoryMapper creates a new status history mapper
func NewStatusHistoryMapper() StatusHistoryMapper {
	return &StatusHistoryMapperImpl{}
}

func (m *StatusHistoryMapperImpl) ToEntity(model *models.StatusHistoryModel) (*ticket.StatusHistory, error) {
	if model == nil {
		return nil, nil
	}

	var fromStatus *vo.TicketStatus
	if model.FromStatus != nil {
		s, err := vo.NewTicketStatus(*model.FromStatus)
		if err != nil {
			return nil, fmt.Errorf("failed to create from status value object: %w", err)
		}
		fromStatus = &s
	}

	toStatus, err := vo.NewTicketStatus(model.ToStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to create to status value object: %w", err)
	}

	entity, err := ticket.ReconstructStatusHistory(
		model.ID,
		model.TicketID,
		fromStatus,
		toStatus,
		model.ChangedByID,
		time.UnixMilli(model.ChangedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct status history entity: %w", err)
	}

	return entity, nil
}

func (m *StatusHistoryMapperImpl) ToModel(entity *ticket.StatusHistory) (*models.StatusHistoryModel, error) {
	if entity == nil {
		return nil, nil
	}

	var fromStatus *string
	if f := entity.FromStatus(); f != nil {
		s := f.String()
		fromStatus = &s
	}

	return &models.StatusHistoryModel{
		ID:          entity.ID(),
		TicketID:    entity.TicketID(),
		FromStatus:  fromStatus,
		ToStatus:    entity.ToStatus().String(),
		ChangedByID: entity.ChangedByID(),
		ChangedAt:   entity.ChangedAt().UnixMilli(),
	}, nil
}

func (m *StatusHistoryMapperImpl) ToEntities(modelList []*models.StatusHistoryModel) ([]*ticket.StatusHistory, error) {
	entities := make([]*ticket.StatusHistory, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
