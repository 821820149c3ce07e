package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	CategoryID  uint
	PriorityID  uint
	ReporterID  uint
}

type CreateTicketResult struct {
	TicketID  uint   `json:"ticket_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	historyRepo  ticket.StatusHistoryRepository
	categoryRepo catalog.CategoryRepository
	priorityRepo catalog.PriorityRepository
	txMgr        db.TxManager
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.StatusHistoryRepository,
	categoryRepo catalog.CategoryRepository,
	priorityRepo catalog.PriorityRepository,
	txMgr db.TxManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		historyRepo:  historyRepo,
		categoryRepo: categoryRepo,
		priorityRepo: priorityRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "reporter_id", cmd.ReporterID, "category_id", cmd.CategoryID)

	category, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to get category", "category_id", cmd.CategoryID, "error", err)
		return nil, errors.NewValidationError(fmt.Sprintf("category %d not found", cmd.CategoryID))
	}
	if !category.IsActive() {
		return nil, errors.NewValidationError(fmt.Sprintf("category %q is not active", category.Name()))
	}

	if _, err := uc.priorityRepo.GetByID(ctx, cmd.PriorityID); err != nil {
		uc.logger.Errorw("failed to get priority", "priority_id", cmd.PriorityID, "error", err)
		return nil, errors.NewValidationError(fmt.Sprintf("priority %d not found", cmd.PriorityID))
	}

	t, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.CategoryID, cmd.PriorityID, cmd.ReporterID)
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	// The ticket row and its creation audit record commit together.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			return fmt.Errorf("failed to save ticket: %w", err)
		}

		record, err := ticket.NewCreationRecord(t.ID(), vo.StatusNew, cmd.ReporterID)
		if err != nil {
			return fmt.Errorf("failed to build creation record: %w", err)
		}
		if err := uc.historyRepo.Append(txCtx, record); err != nil {
			return fmt.Errorf("failed to append status history: %w", err)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to persist ticket", "error", txErr)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID(), "reporter_id", cmd.ReporterID)

	return &CreateTicketResult{
		TicketID:  t.ID(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt().Format(time.RFC3339),
	}, nil
}
