package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusNew        TicketStatus = "new"
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
	StatusReopened   TicketStatus = "reopened"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:        true,
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
	StatusReopened:   true,
}

// ticketStatusTransitions is the full lifecycle automaton. StatusNew is only
// reachable at creation; StatusClosed is not terminal and re-enters through
// StatusReopened. Any pair not listed here is rejected.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusNew: {
		StatusOpen,
	},
	StatusOpen: {
		StatusInProgress,
		StatusClosed,
	},
	StatusInProgress: {
		StatusResolved,
	},
	StatusResolved: {
		StatusClosed,
		StatusReopened,
	},
	StatusClosed: {
		StatusReopened,
	},
	StatusReopened: {
		StatusInProgress,
		StatusResolved,
	},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowed, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// AllowedTransitions returns a copy of the allowed next states for a status.
func (ts TicketStatus) AllowedTransitions() []TicketStatus {
	allowed := ticketStatusTransitions[ts]
	out := make([]TicketStatus, len(allowed))
	copy(out, allowed)
	return out
}

// AllStatuses returns every defined status, creation state first.
func AllStatuses() []TicketStatus {
	return []TicketStatus{
		StatusNew,
		StatusOpen,
		StatusInProgress,
		StatusResolved,
		StatusClosed,
		StatusReopened,
	}
}

func (ts TicketStatus) IsNew() bool {
	return ts == StatusNew
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func (ts TicketStatus) IsReopened() bool {
	return ts == StatusReopened
}

// IsAssignable reports whether a technician may be assigned while the ticket
// is in this status.
func (ts TicketStatus) IsAssignable() bool {
	return ts == StatusNew || ts == StatusOpen
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
