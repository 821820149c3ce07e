package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	AuthorID uint
	Body     string
}

type AddCommentResult struct {
	CommentID uint   `json:"comment_id"`
	TicketID  uint   `json:"ticket_id"`
	CreatedAt string `json:"created_at"`
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	userRepo    identity.UserRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	userRepo identity.UserRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	author, err := uc.userRepo.GetByID(ctx, cmd.AuthorID)
	if err != nil {
		uc.logger.Errorw("failed to get author", "author_id", cmd.AuthorID, "error", err)
		return nil, errors.NewNotFoundError("author not found")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if !t.CanBeViewedBy(author.ID(), author.HasRole(identity.RoleAdmin)) {
		return nil, errors.NewForbiddenError("not authorized to comment on this ticket")
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.AuthorID, cmd.Body)
	if err != nil {
		uc.logger.Errorw("failed to create comment", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err)
		return nil, errors.NewInternalError("failed to save comment")
	}

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "ticket_id", cmd.TicketID)

	return &AddCommentResult{
		CommentID: comment.ID(),
		TicketID:  comment.TicketID(),
		CreatedAt: comment.CreatedAt().Format(time.RFC3339),
	}, nil
}
