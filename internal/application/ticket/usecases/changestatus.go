package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus vo.TicketStatus
	ActorID   uint
}

type ChangeStatusResult struct {
	TicketID  uint   `json:"ticket_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	UpdatedAt string `json:"updated_at"`
}

type ChangeStatusUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.StatusHistoryRepository
	userRepo    identity.UserRepository
	txMgr       db.TxManager
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.StatusHistoryRepository,
	userRepo identity.UserRepository,
	txMgr db.TxManager,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID,
		"new_status", cmd.NewStatus,
		"actor_id", cmd.ActorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid change status command", "error", err)
		return nil, err
	}

	actor, err := uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to get actor", "actor_id", cmd.ActorID, "error", err)
		return nil, errors.NewNotFoundError("actor not found")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if !uc.canChangeStatus(actor, t) {
		uc.logger.Warnw("actor not authorized to change status",
			"actor_id", cmd.ActorID,
			"ticket_id", cmd.TicketID)
		return nil, errors.NewForbiddenError("not authorized to change this ticket's status")
	}

	oldStatus := t.Status()

	if err := t.ChangeStatus(cmd.NewStatus, cmd.ActorID); err != nil {
		uc.logger.Warnw("status transition rejected",
			"ticket_id", cmd.TicketID,
			"from", oldStatus,
			"to", cmd.NewStatus,
			"error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	// Status write and audit row commit together or not at all.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		record, err := ticket.NewStatusHistory(t.ID(), &oldStatus, cmd.NewStatus, cmd.ActorID)
		if err != nil {
			return fmt.Errorf("failed to build status history: %w", err)
		}
		if err := uc.historyRepo.Append(txCtx, record); err != nil {
			return fmt.Errorf("failed to append status history: %w", err)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to persist status change", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, errors.NewInternalError("failed to change ticket status")
	}

	uc.logger.Infow("ticket status changed successfully",
		"ticket_id", t.ID(),
		"old_status", oldStatus,
		"new_status", t.Status())

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
		UpdatedAt: t.UpdatedAt().Format(time.RFC3339),
	}, nil
}

// canChangeStatus gates the direct status endpoint: admins on any ticket,
// the current assignee on their own, and the reporter (so they can close or
// reopen what they filed).
func (uc *ChangeStatusUseCase) canChangeStatus(actor *identity.User, t *ticket.Ticket) bool {
	if actor.HasRole(identity.RoleAdmin) {
		return true
	}
	if t.AssigneeID() != nil && *t.AssigneeID() == actor.ID() {
		return true
	}
	return t.ReporterID() == actor.ID()
}

func (uc *ChangeStatusUseCase) validateCommand(cmd ChangeStatusCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if !cmd.NewStatus.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid status: %s", cmd.NewStatus))
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	return nil
}
