package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func newAssignSetup(t *testing.T) (*mockTicketRepository, *mockStatusHistoryRepository, *mockUserRepository, *AssignTechnicianUseCase) {
	t.Helper()
	ticketRepo := &mockTicketRepository{}
	historyRepo := &mockStatusHistoryRepository{}
	userRepo := &mockUserRepository{}
	uc := NewAssignTechnicianUseCase(ticketRepo, historyRepo, userRepo, &mockTxManager{}, &mockLogger{})
	return ticketRepo, historyRepo, userRepo, uc
}

func usersByID(users ...*identity.User) func(ctx context.Context, id uint) (*identity.User, error) {
	return func(ctx context.Context, id uint) (*identity.User, error) {
		for _, u := range users {
			if u.ID() == id {
				return u, nil
			}
		}
		return nil, errors.NewNotFoundError("user not found")
	}
}

func TestAssignTechnician_NewTicketOpensAndAudits(t *testing.T) {
	ticketRepo, historyRepo, userRepo, uc := newAssignSetup(t)

	admin := adminUser(t, 1)
	tech := technicianUser(t, 2)
	tk := ticketInStatus(t, 10, vo.StatusNew, 3, nil)

	userRepo.GetByIDFunc = usersByID(admin, tech)
	userRepo.ListEligibleTechniciansFunc = func(ctx context.Context) ([]*identity.User, error) {
		return []*identity.User{tech}, nil
	}
	ticketRepo.GetByIDFunc = func(ctx context.Context, id uint) (*ticket.Ticket, error) {
		return tk, nil
	}

	var appended []*ticket.StatusHistory
	historyRepo.AppendFunc = func(ctx context.Context, h *ticket.StatusHistory) error {
		appended = append(appended, h)
		return nil
	}

	result, err := uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 10, TechnicianID: 2, ActorID: 1})
	require.NoError(t, err)

	assert.Equal(t, "open", result.Status)
	assert.True(t, result.Transitioned)
	require.NotNil(t, tk.AssigneeID())
	assert.Equal(t, uint(2), *tk.AssigneeID())
	require.NotNil(t, tk.AssignedAt())

	require.Len(t, appended, 1)
	require.NotNil(t, appended[0].FromStatus())
	assert.Equal(t, vo.StatusNew, *appended[0].FromStatus())
	assert.Equal(t, vo.StatusOpen, appended[0].ToStatus())
	assert.Equal(t, uint(1), appended[0].ChangedByID())
}

func TestAssignTechnician_ReassignWhileOpenIsSilent(t *testing.T) {
	ticketRepo, historyRepo, userRepo, uc := newAssignSetup(t)

	admin := adminUser(t, 1)
	tech2 := technicianUser(t, 5)
	prior := uint(2)
	tk := ticketInStatus(t, 10, vo.StatusOpen, 3, &prior)

	userRepo.GetByIDFunc = usersByID(admin, tech2)
	userRepo.ListEligibleTechniciansFunc = func(ctx context.Context) ([]*identity.User, error) {
		return []*identity.User{tech2}, nil
	}
	ticketRepo.GetByIDFunc = func(ctx context.Context, id uint) (*ticket.Ticket, error) {
		return tk, nil
	}

	appendCount := 0
	historyRepo.AppendFunc = func(ctx context.Context, h *ticket.StatusHistory) error {
		appendCount++
		return nil
	}

	result, err := uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 10, TechnicianID: 5, ActorID: 1})
	require.NoError(t, err)

	assert.Equal(t, "open", result.Status)
	assert.False(t, result.Transitioned)
	assert.Equal(t, uint(5), *tk.AssigneeID())
	assert.Equal(t, 0, appendCount, "reassignment while open writes no audit row")
}

func TestAssignTechnician_StaffFallbackIsEligible(t *testing.T) {
	ticketRepo, _, userRepo, uc := newAssignSetup(t)

	admin := adminUser(t, 1)
	staff := staffUser(t, 4)
	tk := ticketInStatus(t, 10, vo.StatusNew, 3, nil)

	userRepo.GetByIDFunc = usersByID(admin, staff)
	userRepo.ListEligibleTechniciansFunc = func(ctx context.Context) ([]*identity.User, error) {
		return []*identity.User{staff}, nil
	}
	ticketRepo.GetByIDFunc = func(ctx context.Context, id uint) (*ticket.Ticket, error) {
		return tk, nil
	}

	_, err := uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 10, TechnicianID: 4, ActorID: 1})
	require.NoError(t, err)
	assert.Equal(t, uint(4), *tk.AssigneeID())
}

func TestAssignTechnician_SuperuserActsAsAdmin(t *testing.T) {
	ticketRepo, _, userRepo, uc := newAssignSetup(t)

	super := superUser(t, 1)
	tech := technicianUser(t, 2)
	tk := ticketInStatus(t, 10, vo.StatusNew, 3, nil)

	userRepo.GetByIDFunc = usersByID(super, tech)
	userRepo.ListEligibleTechniciansFunc = func(ctx context.Context) ([]*identity.User, error) {
		return []*identity.User{tech}, nil
	}
	ticketRepo.GetByIDFunc = func(ctx context.Context, id uint) (*ticket.Ticket, error) {
		return tk, nil
	}

	_, err := uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 10, TechnicianID: 2, ActorID: 1})
	require.NoError(t, err)
}

func TestAssignTechnician_NonAdminForbidden(t *testing.T) {
	_, _, userRepo, uc := newAssignSetup(t)

	tech := technicianUser(t, 2)
	userRepo.GetByIDFunc = usersByID(tech)

	_, err := uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 10, TechnicianID: 2, ActorID: 2})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestAssignTechnician_EmptyEligibleSet(t *testing.T) {
	ticketRepo, _, userRepo, uc := newAssignSetup(t)

	admin := adminUser(t, 1)
	userRepo.GetByIDFunc = usersByID(admin)
	userRepo.ListEligibleTechniciansFunc = func(ctx context.Context) ([]*identity.User, error) {
		return []*identity.User{}, nil
	}
	ticketRepo.GetByIDFunc = func(ctx context.Context, id uint) (*ticket.Ticket, error) {
		t.Fatal("ticket must not be loaded when the pool is empty")
		return nil, nil
	}

	_, err := uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 10, TechnicianID: 2, ActorID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "no technicians are available to assign")
}

func TestAssignTechnician_IneligibleAssignee(t *testing.T) {
	ticketRepo, _, userRepo, uc := newAssignSetup(t)

	admin := adminUser(t, 1)
	reporter := reporterUser(t, 6)
	tech := technicianUser(t, 2)
	tk := ticketInStatus(t, 10, vo.StatusNew, 3, nil)

	userRepo.GetByIDFunc = usersByID(admin, reporter, tech)
	userRepo.ListEligibleTechniciansFunc = func(ctx context.Context) ([]*identity.User, error) {
		return []*identity.User{tech}, nil
	}
	ticketRepo.GetByIDFunc = func(ctx context.Context, id uint) (*ticket.Ticket, error) {
		return tk, nil
	}

	_, err := uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 10, TechnicianID: 6, ActorID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an eligible technician")
	assert.Nil(t, tk.AssigneeID(), "failed assignment must not mutate the ticket")
	assert.Nil(t, tk.AssignedAt())
}

func TestAssignTechnician_AdminWithoutTechnicianRoleIsNotAssignable(t *testing.T) {
	ticketRepo, _, userRepo, uc := newAssignSetup(t)

	admin := adminUser(t, 1)
	otherAdmin := adminUser(t, 8)
	tech := technicianUser(t, 2)
	tk := ticketInStatus(t, 10, vo.StatusNew, 3, nil)

	userRepo.GetByIDFunc = usersByID(admin, otherAdmin, tech)
	userRepo.ListEligibleTechniciansFunc = func(ctx context.Context) ([]*identity.User, error) {
		return []*identity.User{tech}, nil
	}
	ticketRepo.GetByIDFunc = func(ctx context.Context, id uint) (*ticket.Ticket, error) {
		return tk, nil
	}

	_, err := uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 10, TechnicianID: 8, ActorID: 1})
	require.Error(t, err)
	assert.Nil(t, tk.AssigneeID())
}

func TestAssignTechnician_RejectedInNonAssignableStatuses(t *testing.T) {
	for _, status := range []vo.TicketStatus{vo.StatusInProgress, vo.StatusResolved, vo.StatusClosed, vo.StatusReopened} {
		t.Run(status.String(), func(t *testing.T) {
			ticketRepo, historyRepo, userRepo, uc := newAssignSetup(t)

			admin := adminUser(t, 1)
			tech := technicianUser(t, 2)
			tk := ticketInStatus(t, 10, status, 3, nil)

			userRepo.GetByIDFunc = usersByID(admin, tech)
			userRepo.ListEligibleTechniciansFunc = func(ctx context.Context) ([]*identity.User, error) {
				return []*identity.User{tech}, nil
			}
			ticketRepo.GetByIDFunc = func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			}

			appendCount := 0
			historyRepo.AppendFunc = func(ctx context.Context, h *ticket.StatusHistory) error {
				appendCount++
				return nil
			}
			updateCount := 0
			ticketRepo.UpdateFunc = func(ctx context.Context, tk *ticket.Ticket) error {
				updateCount++
				return nil
			}

			_, err := uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 10, TechnicianID: 2, ActorID: 1})
			require.Error(t, err)
			assert.Nil(t, tk.AssigneeID())
			assert.Equal(t, status, tk.Status())
			assert.Equal(t, 0, appendCount)
			assert.Equal(t, 0, updateCount)
		})
	}
}

func TestAssignTechnician_AssignThenReassignProducesOneAuditRow(t *testing.T) {
	ticketRepo, historyRepo, userRepo, uc := newAssignSetup(t)

	admin := adminUser(t, 1)
	tech1 := technicianUser(t, 2)
	tech2 := technicianUser(t, 5)
	tk := ticketInStatus(t, 10, vo.StatusNew, 3, nil)

	userRepo.GetByIDFunc = usersByID(admin, tech1, tech2)
	userRepo.ListEligibleTechniciansFunc = func(ctx context.Context) ([]*identity.User, error) {
		return []*identity.User{tech1, tech2}, nil
	}
	ticketRepo.GetByIDFunc = func(ctx context.Context, id uint) (*ticket.Ticket, error) {
		return tk, nil
	}

	appendCount := 0
	historyRepo.AppendFunc = func(ctx context.Context, h *ticket.StatusHistory) error {
		appendCount++
		return nil
	}

	_, err := uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 10, TechnicianID: 2, ActorID: 1})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 10, TechnicianID: 5, ActorID: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, appendCount, "exactly one history row across assign + reassign")
	assert.Equal(t, uint(5), *tk.AssigneeID())
	assert.Equal(t, vo.StatusOpen, tk.Status())
}
