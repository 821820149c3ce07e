package ticket

import (
	"errors"
	"fmt"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// InvalidTransitionError reports a status change not allowed by the
// transition table.
type InvalidTransitionError struct {
	From vo.TicketStatus
	To   vo.TicketStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s -> %s", e.From, e.To)
}

// NewInvalidTransitionError creates an InvalidTransitionError for a rejected
// from/to pair.
func NewInvalidTransitionError(from, to vo.TicketStatus) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// IsInvalidTransition checks whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var e *InvalidTransitionError
	return errors.As(err, &e)
}

// InvalidStateError reports a lifecycle operation invoked on a ticket in the
// wrong persistence state (e.g. initializing an already-persisted ticket).
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// IsInvalidState checks whether err is an InvalidStateError.
func IsInvalidState(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}

// InvalidAssigneeError reports an assignment target that is not an eligible
// technician.
type InvalidAssigneeError struct {
	UserID uint
}

func (e *InvalidAssigneeError) Error() string {
	return fmt.Sprintf("user %d is not an eligible technician", e.UserID)
}

// NewInvalidAssigneeError creates an InvalidAssigneeError for the rejected
// user.
func NewInvalidAssigneeError(userID uint) *InvalidAssigneeError {
	return &InvalidAssigneeError{UserID: userID}
}

// IsInvalidAssignee checks whether err is an InvalidAssigneeError.
func IsInvalidAssignee(err error) bool {
	var e *InvalidAssigneeError
	return errors.As(err, &e)
}

// ErrNoEligibleTechnicians is returned by the assignment workflow when no
// user qualifies as an assignable technician.
var ErrNoEligibleTechnicians = errors.New("no technicians are available to assign")

// ErrNotAssignable is returned when assignment is attempted while the ticket
// status does not permit it.
var ErrNotAssignable = errors.New("ticket status does not permit assignment")
