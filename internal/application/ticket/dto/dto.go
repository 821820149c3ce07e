package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CategoryID  uint       `json:"category_id"`
	PriorityID  uint       `json:"priority_id"`
	ReporterID  uint       `json:"reporter_id"`
	AssigneeID  *uint      `json:"assignee_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	AssignedAt  *time.Time `json:"assigned_at"`
}

type TicketListItemDTO struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	CategoryID uint   `json:"category_id"`
	PriorityID uint   `json:"priority_id"`
	ReporterID uint   `json:"reporter_id"`
	AssigneeID *uint  `json:"assignee_id"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type StatusHistoryDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	FromStatus  *string   `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	ChangedByID uint      `json:"changed_by_id"`
	ChangedAt   time.Time `json:"changed_at"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	AuthorID  uint      `json:"author_id"`
	Body      string    `json:"body"`
	BodyHTML  string    `json:"body_html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID           uint      `json:"id"`
	TicketID     uint      `json:"ticket_id"`
	UploadedByID uint      `json:"uploaded_by_id"`
	FileName     string    `json:"file_name"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		CategoryID:  t.CategoryID(),
		PriorityID:  t.PriorityID(),
		ReporterID:  t.ReporterID(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		AssignedAt:  t.AssignedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:         t.ID(),
		Title:      t.Title(),
		Status:     t.Status().String(),
		CategoryID: t.CategoryID(),
		PriorityID: t.PriorityID(),
		ReporterID: t.ReporterID(),
		AssigneeID: t.AssigneeID(),
		CreatedAt:  t.CreatedAt().Format(time.RFC3339),
		UpdatedAt:  t.UpdatedAt().Format(time.RFC3339),
	}
}

func ToStatusHistoryDTO(h *ticket.StatusHistory) StatusHistoryDTO {
	var from *string
	if h.FromStatus() != nil {
		s := h.FromStatus().String()
		from = &s
	}
	return StatusHistoryDTO{
		ID:          h.ID(),
		TicketID:    h.TicketID(),
		FromStatus:  from,
		ToStatus:    h.ToStatus().String(),
		ChangedByID: h.ChangedByID(),
		ChangedAt:   h.ChangedAt(),
	}
}

func ToCommentDTO(c *ticket.Comment, bodyHTML string) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Body:      c.Body(),
		BodyHTML:  bodyHTML,
		CreatedAt: c.CreatedAt(),
	}
}

func ToAttachmentDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		UploadedByID: a.UploadedByID(),
		FileName:     a.FileName(),
		ContentType:  a.ContentType(),
		Size:         a.Size(),
		UploadedAt:   a.UploadedAt(),
	}
}
