package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AssignTechnicianCommand struct {
	TicketID     uint
	TechnicianID uint
	ActorID      uint
}

type AssignTechnicianResult struct {
	TicketID     uint   `json:"ticket_id"`
	TechnicianID uint   `json:"technician_id"`
	Status       string `json:"status"`
	Transitioned bool   `json:"transitioned"`
}

// AssignTechnicianUseCase is the assignment workflow. Admins hand a ticket to
// an eligible technician; a ticket still in status new is opened by the same
// call, and that transition is the only one this workflow audits.
type AssignTechnicianUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.StatusHistoryRepository
	userRepo    identity.UserRepository
	txMgr       db.TxManager
	logger      logger.Interface
}

func NewAssignTechnicianUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.StatusHistoryRepository,
	userRepo identity.UserRepository,
	txMgr db.TxManager,
	logger logger.Interface,
) *AssignTechnicianUseCase {
	return &AssignTechnicianUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *AssignTechnicianUseCase) Execute(ctx context.Context, cmd AssignTechnicianCommand) (*AssignTechnicianResult, error) {
	uc.logger.Infow("executing assign technician use case",
		"ticket_id", cmd.TicketID,
		"technician_id", cmd.TechnicianID,
		"actor_id", cmd.ActorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid assign technician command", "error", err)
		return nil, err
	}

	actor, err := uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to get actor", "actor_id", cmd.ActorID, "error", err)
		return nil, errors.NewNotFoundError("actor not found")
	}
	if !actor.HasRole(identity.RoleAdmin) {
		uc.logger.Warnw("non-admin attempted assignment", "actor_id", cmd.ActorID)
		return nil, errors.NewForbiddenError("only administrators may assign technicians")
	}

	eligible, err := uc.userRepo.ListEligibleTechnicians(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list eligible technicians", "error", err)
		return nil, errors.NewInternalError("failed to list eligible technicians")
	}
	if len(eligible) == 0 {
		return nil, errors.NewValidationError(ticket.ErrNoEligibleTechnicians.Error())
	}

	technician, err := uc.userRepo.GetByID(ctx, cmd.TechnicianID)
	if err != nil {
		uc.logger.Errorw("failed to get technician", "technician_id", cmd.TechnicianID, "error", err)
		return nil, errors.NewNotFoundError("technician not found")
	}
	if !technician.IsEligibleTechnician() {
		uc.logger.Warnw("user is not an eligible technician", "technician_id", cmd.TechnicianID)
		return nil, errors.NewValidationError(ticket.NewInvalidAssigneeError(cmd.TechnicianID).Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	priorStatus := t.Status()
	if !priorStatus.IsAssignable() {
		return nil, errors.NewValidationError(
			fmt.Sprintf("ticket in status %q cannot be assigned", priorStatus))
	}

	if err := t.AssignTechnician(cmd.TechnicianID); err != nil {
		uc.logger.Errorw("failed to assign technician", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	transitioned := false
	if priorStatus.IsNew() {
		if err := t.ChangeStatus(vo.StatusOpen, cmd.ActorID); err != nil {
			uc.logger.Errorw("failed to open ticket on assignment", "error", err)
			return nil, errors.NewValidationError(err.Error())
		}
		transitioned = true
	}

	// Assignment, the conditional open transition and its audit record are one
	// unit of work. Reassignment while open writes no history row.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		if transitioned {
			record, err := ticket.NewStatusHistory(t.ID(), &priorStatus, vo.StatusOpen, cmd.ActorID)
			if err != nil {
				return fmt.Errorf("failed to build status history: %w", err)
			}
			if err := uc.historyRepo.Append(txCtx, record); err != nil {
				return fmt.Errorf("failed to append status history: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to persist assignment", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, errors.NewInternalError("failed to assign technician")
	}

	uc.logger.Infow("technician assigned successfully",
		"ticket_id", t.ID(),
		"technician_id", cmd.TechnicianID,
		"status", t.Status().String())

	return &AssignTechnicianResult{
		TicketID:     t.ID(),
		TechnicianID: cmd.TechnicianID,
		Status:       t.Status().String(),
		Transitioned: transitioned,
	}, nil
}

func (uc *AssignTechnicianUseCase) validateCommand(cmd AssignTechnicianCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.TechnicianID == 0 {
		return errors.NewValidationError("technician ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	return nil
}
