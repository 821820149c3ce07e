package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// StatusHistory is one append-only audit record of a ticket status change.
// A nil FromStatus denotes the synthetic creation record written alongside
// the ticket itself.
type StatusHistory struct {
	id          uint
	ticketID    uint
	fromStatus  *vo.TicketStatus
	toStatus    vo.TicketStatus
	changedByID uint
	changedAt   time.Time
}

func NewStatusHistory(
	ticketID uint,
	fromStatus *vo.TicketStatus,
	toStatus vo.TicketStatus,
	changedByID uint,
) (*StatusHistory, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if fromStatus != nil && !fromStatus.IsValid() {
		return nil, fmt.Errorf("invalid from status: %s", *fromStatus)
	}
	if !toStatus.IsValid() {
		return nil, fmt.Errorf("invalid to status: %s", toStatus)
	}
	if changedByID == 0 {
		return nil, fmt.Errorf("changed by user ID is required")
	}

	return &StatusHistory{
		ticketID:    ticketID,
		fromStatus:  fromStatus,
		toStatus:    toStatus,
		changedByID: changedByID,
		changedAt:   time.Now(),
	}, nil
}

// NewCreationRecord builds the synthetic record that marks ticket creation.
func NewCreationRecord(ticketID uint, initial vo.TicketStatus, createdByID uint) (*StatusHistory, error) {
	return NewStatusHistory(ticketID, nil, initial, createdByID)
}

func ReconstructStatusHistory(
	id uint,
	ticketID uint,
	fromStatus *vo.TicketStatus,
	toStatus vo.TicketStatus,
	changedByID uint,
	changedAt time.Time,
) (*StatusHistory, error) {
	if id == 0 {
		return nil, fmt.Errorf("status history ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &StatusHistory{
		id:          id,
		ticketID:    ticketID,
		fromStatus:  fromStatus,
		toStatus:    toStatus,
		changedByID: changedByID,
		changedAt:   changedAt,
	}, nil
}

func (h *StatusHistory) ID() uint {
	return h.id
}

func (h *StatusHistory) TicketID() uint {
	return h.ticketID
}

func (h *StatusHistory) FromStatus() *vo.TicketStatus {
	return h.fromStatus
}

func (h *StatusHistory) ToStatus() vo.TicketStatus {
	return h.toStatus
}

func (h *StatusHistory) ChangedByID() uint {
	return h.changedByID
}

func (h *StatusHistory) ChangedAt() time.Time {
	return h.changedAt
}

// IsCreationRecord reports whether this is the synthetic creation entry.
func (h *StatusHistory) IsCreationRecord() bool {
	return h.fromStatus == nil
}

func (h *StatusHistory) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("status history ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status history ID cannot be zero")
	}
	h.id = id
	return nil
}
