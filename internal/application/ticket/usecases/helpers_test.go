package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func adminUser(t *testing.T, id uint) *identity.User {
	t.Helper()
	return userWith(t, id, rolePtr(identity.RoleAdmin), false, false)
}

func superUser(t *testing.T, id uint) *identity.User {
	t.Helper()
	return userWith(t, id, nil, false, true)
}

func technicianUser(t *testing.T, id uint) *identity.User {
	t.Helper()
	return userWith(t, id, rolePtr(identity.RoleTechnician), false, false)
}

func staffUser(t *testing.T, id uint) *identity.User {
	t.Helper()
	return userWith(t, id, nil, true, false)
}

func reporterUser(t *testing.T, id uint) *identity.User {
	t.Helper()
	return userWith(t, id, rolePtr(identity.RoleReporter), false, false)
}

func userWith(t *testing.T, id uint, role *identity.RoleName, isStaff, isSuperuser bool) *identity.User {
	t.Helper()
	now := time.Now()
	u, err := identity.ReconstructUser(id, "user", "user@example.com", "$2a$10$hash", isStaff, isSuperuser, role, now, now)
	require.NoError(t, err)
	return u
}

func rolePtr(r identity.RoleName) *identity.RoleName {
	return &r
}

func ticketInStatus(t *testing.T, id uint, status vo.TicketStatus, reporterID uint, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(id, "Printer offline", "Not responding", status, 1, 2, reporterID, assigneeID, now, now, nil)
	require.NoError(t, err)
	return tk
}
