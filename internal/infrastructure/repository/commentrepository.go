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

type CommentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CommentMapper
}

func NewCommentRepository(gormDB *gorm.DB) ticket.CommentRepository {
	return &CommentRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewCommentMapper(),
	}
}

func (r *CommentRepositoryImpl) Save(ctx context.Context, c *ticket.Comment) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map comment entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set comment ID: %w", err)
	}

	return nil
}

func (r *CommentRepositoryImpl) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var modelList []*models.CommentModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map comment models to entities: %w", err)
	}

	return entities, nil
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	var model models.CommentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to get comment by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.CommentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("comment not found")
	}

	return nil
}
