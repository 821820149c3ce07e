package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// TicketFilter narrows and pages List results. Zero values mean "no filter".
type TicketFilter struct {
	Status     *vo.TicketStatus
	CategoryID *uint
	PriorityID *uint
	ReporterID *uint
	AssigneeID *uint
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

// StatusHistoryRepository is append-only. Records are never updated or
// deleted individually; they go away only when their ticket is deleted.
type StatusHistoryRepository interface {
	Append(ctx context.Context, h *StatusHistory) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*StatusHistory, error)
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	GetByID(ctx context.Context, id uint) (*Comment, error)
	Delete(ctx context.Context, id uint) error
}

type AttachmentRepository interface {
	Save(ctx context.Context, a *Attachment) error
	GetByID(ctx context.Context, id uint) (*Attachment, error)
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
	Delete(ctx context.Context, id uint) error
}
