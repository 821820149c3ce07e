package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type StatusHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.StatusHistoryMapper
}

func NewStatusHistoryRepository(gormDB *gorm.DB) ticket.StatusHistoryRepository {
	return &StatusHistoryRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewStatusHistoryMapper(),
	}
}

func (r *StatusHistoryRepositoryImpl) Append(ctx context.Context, h *ticket.StatusHistory) error {
	model, err := r.mapper.ToModel(h)
	if err != nil {
		return fmt.Errorf("failed to map status history entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append status history: %w", err)
	}

	if err := h.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set status history ID: %w", err)
	}

	return nil
}

func (r *StatusHistoryRepositoryImpl) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.StatusHistory, error) {
	var modelList []*models.StatusHistoryModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("changed_at ASC, id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map status history models to entities: %w", err)
	}

	return entities, nil
}
