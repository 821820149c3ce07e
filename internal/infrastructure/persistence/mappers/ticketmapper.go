package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and persistence models
type TicketMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *ticket.Ticket) (*models.TicketModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper
type TicketMapperImpl struct{}

// NewTicketMapper creates a new ticket mapper
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *TicketMapperImpl) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create status value object: %w", err)
	}

	var assignedAt *time.Time
	if model.AssignedAt != nil {
		t := time.UnixMilli(*model.AssignedAt)
		assignedAt = &t
	}

	entity, err := ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		status,
		model.CategoryID,
		model.PriorityID,
		model.ReporterID,
		model.AssigneeID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
		assignedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) (*models.TicketModel, error) {
	if entity == nil {
		return nil, nil
	}

	var assignedAt *int64
	if t := entity.AssignedAt(); t != nil {
		ms := t.UnixMilli()
		assignedAt = &ms
	}

	return &models.TicketModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Status:      entity.Status().String(),
		CategoryID:  entity.CategoryID(),
		PriorityID:  entity.PriorityID(),
		ReporterID:  entity.ReporterID(),
		AssigneeID:  entity.AssigneeID(),
		CreatedAt:   entity.CreatedAt().UnixMilli(),
		UpdatedAt:   entity.UpdatedAt().UnixMilli(),
		AssignedAt:  assignedAt,
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *TicketMapperImpl) ToEntities(modelList []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
