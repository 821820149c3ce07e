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

type AddAttachmentCommand struct {
	TicketID    uint
	UploaderID  uint
	FileName    string
	ContentType string
	Data        []byte
}

type AddAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	userRepo       identity.UserRepository
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	userRepo identity.UserRepository,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error) {
	uc.logger.Infow("executing add attachment use case",
		"ticket_id", cmd.TicketID,
		"uploader_id", cmd.UploaderID,
		"file_name", cmd.FileName,
		"size", len(cmd.Data))

	uploader, err := uc.userRepo.GetByID(ctx, cmd.UploaderID)
	if err != nil {
		uc.logger.Errorw("failed to get uploader", "uploader_id", cmd.UploaderID, "error", err)
		return nil, errors.NewNotFoundError("uploader not found")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if !t.CanBeViewedBy(uploader.ID(), uploader.HasRole(identity.RoleAdmin)) {
		return nil, errors.NewForbiddenError("not authorized to attach files to this ticket")
	}

	attachment, err := ticket.NewAttachment(cmd.TicketID, cmd.UploaderID, cmd.FileName, cmd.ContentType, cmd.Data)
	if err != nil {
		uc.logger.Errorw("failed to create attachment", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment", "error", err)
		return nil, errors.NewInternalError("failed to save attachment")
	}

	uc.logger.Infow("attachment saved successfully", "attachment_id", attachment.ID(), "ticket_id", cmd.TicketID)

	result := dto.ToAttachmentDTO(attachment)
	return &result, nil
}
