package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// Ticket is the aggregate root of the helpdesk lifecycle. Its status is only
// mutated through InitializeStatus and ChangeStatus so every accepted change
// can be paired with a StatusHistory record by the caller.
type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.TicketStatus
	categoryID  uint
	priorityID  uint
	reporterID  uint
	assigneeID  *uint
	createdAt   time.Time
	updatedAt   time.Time
	assignedAt  *time.Time
}

func NewTicket(
	title string,
	description string,
	categoryID uint,
	priorityID uint,
	reporterID uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if priorityID == 0 {
		return nil, fmt.Errorf("priority ID is required")
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}

	now := time.Now()
	t := &Ticket{
		title:       title,
		description: description,
		categoryID:  categoryID,
		priorityID:  priorityID,
		reporterID:  reporterID,
		createdAt:   now,
		updatedAt:   now,
	}

	if err := t.InitializeStatus(vo.StatusNew); err != nil {
		return nil, err
	}

	return t, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.TicketStatus,
	categoryID uint,
	priorityID uint,
	reporterID uint,
	assigneeID *uint,
	createdAt, updatedAt time.Time,
	assignedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if priorityID == 0 {
		return nil, fmt.Errorf("priority ID is required")
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		categoryID:  categoryID,
		priorityID:  priorityID,
		reporterID:  reporterID,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		assignedAt:  assignedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CategoryID() uint {
	return t.categoryID
}

func (t *Ticket) PriorityID() uint {
	return t.priorityID
}

func (t *Ticket) ReporterID() uint {
	return t.reporterID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) AssignedAt() *time.Time {
	return t.assignedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// InitializeStatus sets the creation-time status. It is only valid on a
// ticket that has not been persisted; the caller persists the ticket and the
// synthetic creation StatusHistory record in the same transaction.
func (t *Ticket) InitializeStatus(initial vo.TicketStatus) error {
	if t.id != 0 {
		return &InvalidStateError{Message: "status can only be initialized on an unsaved ticket"}
	}
	if !initial.IsValid() {
		return fmt.Errorf("invalid status: %s", initial)
	}
	t.status = initial
	return nil
}

// ChangeStatus applies a transition from the table. It mutates the status in
// place and nothing else; the caller records the audit entry using the
// pre-mutation status inside the same transaction.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus, changedBy uint) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if changedBy == 0 {
		return fmt.Errorf("changed by user ID is required")
	}

	if !t.status.CanTransitionTo(newStatus) {
		return NewInvalidTransitionError(t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	return nil
}

// AssignTechnician records the assignee and assignment time. It never touches
// the status; the assignment workflow decides whether a transition
// accompanies the assignment. Technician eligibility is checked by the
// workflow against the identity store.
func (t *Ticket) AssignTechnician(technicianID uint) error {
	if technicianID == 0 {
		return fmt.Errorf("technician ID cannot be zero")
	}

	now := time.Now()
	t.assigneeID = &technicianID
	t.assignedAt = &now
	t.updatedAt = now

	return nil
}

// CanBeViewedBy reports whether a user may see this ticket: admins always,
// otherwise only the reporter and the current assignee.
func (t *Ticket) CanBeViewedBy(userID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	if t.reporterID == userID {
		return true
	}
	if t.assigneeID != nil && *t.assigneeID == userID {
		return true
	}
	return false
}
