package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type AttachmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AttachmentMapper
}

func NewAttachmentRepository(gormDB *gorm.DB) ticket.AttachmentRepository {
	return &AttachmentRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewAttachmentMapper(),
	}
}

func (r *AttachmentRepositoryImpl) Save(ctx context.Context, a *ticket.Attachment) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map attachment entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set attachment ID: %w", err)
	}

	return nil
}

func (r *AttachmentRepositoryImpl) GetByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	var model models.AttachmentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("attachment not found")
		}
		return nil, fmt.Errorf("failed to get attachment by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByTicketID omits blob data so listings stay cheap. Download goes
// through GetByID.
func (r *AttachmentRepositoryImpl) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var modelList []*models.AttachmentModel

	err := db.GetTxFromContext(ctx, r.db).
		Select("id", "ticket_id", "uploaded_by_id", "file_name", "content_type", "size", "uploaded_at").
		Where("ticket_id = ?", ticketID).
		Order("uploaded_at ASC, id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map attachment models to entities: %w", err)
	}

	return entities, nil
}

func (r *AttachmentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.AttachmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("attachment not found")
	}

	return nil
}
