package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetAttachmentQuery struct {
	AttachmentID uint
	ActorID      uint
}

// AttachmentDownload carries the blob plus the headers a handler needs.
type AttachmentDownload struct {
	FileName    string
	ContentType string
	Data        []byte
}

type GetAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	userRepo       identity.UserRepository
	logger         logger.Interface
}

func NewGetAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	userRepo identity.UserRepository,
	logger logger.Interface,
) *GetAttachmentUseCase {
	return &GetAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *GetAttachmentUseCase) Execute(ctx context.Context, query GetAttachmentQuery) (*AttachmentDownload, error) {
	if query.AttachmentID == 0 {
		return nil, errors.NewValidationError("attachment ID is required")
	}
	if query.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	actor, err := uc.userRepo.GetByID(ctx, query.ActorID)
	if err != nil {
		return nil, errors.NewNotFoundError("actor not found")
	}

	attachment, err := uc.attachmentRepo.GetByID(ctx, query.AttachmentID)
	if err != nil {
		uc.logger.Errorw("failed to get attachment", "attachment_id", query.AttachmentID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("attachment %d not found", query.AttachmentID))
	}

	t, err := uc.ticketRepo.GetByID(ctx, attachment.TicketID())
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", attachment.TicketID(), "error", err)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(actor.ID(), actor.HasRole(identity.RoleAdmin)) {
		return nil, errors.NewForbiddenError("not authorized to download this attachment")
	}

	return &AttachmentDownload{
		FileName:    attachment.FileName(),
		ContentType: attachment.ContentType(),
		Data:        attachment.Data(),
	}, nil
}

type ListAttachmentsQuery struct {
	TicketID uint
	ActorID  uint
}

type ListAttachmentsUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	userRepo       identity.UserRepository
	logger         logger.Interface
}

func NewListAttachmentsUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	userRepo identity.UserRepository,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) ([]dto.AttachmentDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if query.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	actor, err := uc.userRepo.GetByID(ctx, query.ActorID)
	if err != nil {
		return nil, errors.NewNotFoundError("actor not found")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	if !t.CanBeViewedBy(actor.ID(), actor.HasRole(identity.RoleAdmin)) {
		return nil, errors.NewForbiddenError("not authorized to view this ticket")
	}

	attachments, err := uc.attachmentRepo.ListByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list attachments")
	}

	result := make([]dto.AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		result = append(result, dto.ToAttachmentDTO(a))
	}
	return result, nil
}
