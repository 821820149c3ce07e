package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func newCreateSetup(t *testing.T) (*mockTicketRepository, *mockStatusHistoryRepository, *mockCategoryRepository, *mockPriorityRepository, *CreateTicketUseCase) {
	t.Helper()
	ticketRepo := &mockTicketRepository{}
	historyRepo := &mockStatusHistoryRepository{}
	categoryRepo := &mockCategoryRepository{}
	priorityRepo := &mockPriorityRepository{}
	uc := NewCreateTicketUseCase(ticketRepo, historyRepo, categoryRepo, priorityRepo, &mockTxManager{}, &mockLogger{})
	return ticketRepo, historyRepo, categoryRepo, priorityRepo, uc
}

func activeCategory(t *testing.T, id uint) *catalog.Category {
	t.Helper()
	now := time.Now()
	c, err := catalog.ReconstructCategory(id, "Network", true, now, now)
	require.NoError(t, err)
	return c
}

func somePriority(t *testing.T, id uint) *catalog.Priority {
	t.Helper()
	now := time.Now()
	p, err := catalog.ReconstructPriority(id, "High", 1, now, now)
	require.NoError(t, err)
	return p
}

func TestCreateTicket_WritesTicketAndCreationRecord(t *testing.T) {
	ticketRepo, historyRepo, categoryRepo, priorityRepo, uc := newCreateSetup(t)

	categoryRepo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Category, error) {
		return activeCategory(t, id), nil
	}
	priorityRepo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Priority, error) {
		return somePriority(t, id), nil
	}
	ticketRepo.SaveFunc = func(ctx context.Context, tk *ticket.Ticket) error {
		return tk.SetID(42)
	}

	var appended []*ticket.StatusHistory
	historyRepo.AppendFunc = func(ctx context.Context, h *ticket.StatusHistory) error {
		appended = append(appended, h)
		return nil
	}

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Printer offline",
		Description: "The third floor printer is not responding",
		CategoryID:  1,
		PriorityID:  2,
		ReporterID:  3,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), result.TicketID)
	assert.Equal(t, "new", result.Status)

	require.Len(t, appended, 1)
	assert.True(t, appended[0].IsCreationRecord())
	assert.Nil(t, appended[0].FromStatus())
	assert.Equal(t, vo.StatusNew, appended[0].ToStatus())
	assert.Equal(t, uint(3), appended[0].ChangedByID())
	assert.Equal(t, uint(42), appended[0].TicketID())
}

func TestCreateTicket_InactiveCategoryRejected(t *testing.T) {
	ticketRepo, _, categoryRepo, _, uc := newCreateSetup(t)

	categoryRepo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Category, error) {
		now := time.Now()
		c, err := catalog.ReconstructCategory(id, "Retired", false, now, now)
		require.NoError(t, err)
		return c, nil
	}
	ticketRepo.SaveFunc = func(ctx context.Context, tk *ticket.Ticket) error {
		t.Fatal("ticket must not be saved for inactive category")
		return nil
	}

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Printer offline",
		Description: "desc",
		CategoryID:  1,
		PriorityID:  2,
		ReporterID:  3,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateTicket_UnknownCategoryRejected(t *testing.T) {
	_, _, categoryRepo, _, uc := newCreateSetup(t)

	categoryRepo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Category, error) {
		return nil, errors.NewNotFoundError("category not found")
	}

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Printer offline",
		Description: "desc",
		CategoryID:  99,
		PriorityID:  2,
		ReporterID:  3,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateTicket_SaveFailureAbortsHistory(t *testing.T) {
	ticketRepo, historyRepo, categoryRepo, priorityRepo, uc := newCreateSetup(t)

	categoryRepo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Category, error) {
		return activeCategory(t, id), nil
	}
	priorityRepo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Priority, error) {
		return somePriority(t, id), nil
	}
	ticketRepo.SaveFunc = func(ctx context.Context, tk *ticket.Ticket) error {
		return errors.NewInternalError("db down")
	}
	historyRepo.AppendFunc = func(ctx context.Context, h *ticket.StatusHistory) error {
		t.Fatal("history must not be appended when the save fails")
		return nil
	}

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Printer offline",
		Description: "desc",
		CategoryID:  1,
		PriorityID:  2,
		ReporterID:  3,
	})
	require.Error(t, err)
}
