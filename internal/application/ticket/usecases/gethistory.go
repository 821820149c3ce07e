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

type GetHistoryQuery struct {
	TicketID uint
	ActorID  uint
}

type GetHistoryUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.StatusHistoryRepository
	userRepo    identity.UserRepository
	logger      logger.Interface
}

func NewGetHistoryUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.StatusHistoryRepository,
	userRepo identity.UserRepository,
	logger logger.Interface,
) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *GetHistoryUseCase) Execute(ctx context.Context, query GetHistoryQuery) ([]dto.StatusHistoryDTO, error) {
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

	records, err := uc.historyRepo.ListByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list status history", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list status history")
	}

	result := make([]dto.StatusHistoryDTO, 0, len(records))
	for _, record := range records {
		result = append(result, dto.ToStatusHistoryDTO(record))
	}
	return result, nil
}
