package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type ListCommentsQuery struct {
	TicketID uint
	ActorID  uint
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	userRepo    identity.UserRepository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	userRepo identity.UserRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		markdown:    markdownSvc,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if query.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	actor, err := uc.userRepo.GetByID(ctx, query.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to get actor", "actor_id", query.ActorID, "error", err)
		return nil, errors.NewNotFoundError("actor not found")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	if !t.CanBeViewedBy(actor.ID(), actor.HasRole(identity.RoleAdmin)) {
		return nil, errors.NewForbiddenError("not authorized to view this ticket")
	}

	comments, err := uc.commentRepo.ListByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list comments")
	}

	result := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		html, err := uc.markdown.ToHTMLSanitized(c.Body())
		if err != nil {
			uc.logger.Warnw("failed to render comment body", "comment_id", c.ID(), "error", err)
			html = ""
		}
		result = append(result, dto.ToCommentDTO(c, html))
	}
	return result, nil
}
