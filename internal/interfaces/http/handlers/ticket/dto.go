package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	PriorityID  uint   `json:"priority_id" binding:"required"`
}

func (r *CreateTicketRequest) ToCommand(reporterID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		PriorityID:  r.PriorityID,
		ReporterID:  reporterID,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,ticketstatus"`
}

func (r *ChangeStatusRequest) ToCommand(ticketID, actorID uint) usecases.ChangeStatusCommand {
	return usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: vo.TicketStatus(r.Status),
		ActorID:   actorID,
	}
}

type AssignTechnicianRequest struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
}

type AddCommentRequest struct {
	Body string `json:"body" binding:"required,max=10000"`
}

type ListTicketsRequest struct {
	Status     string
	CategoryID *uint
	PriorityID *uint
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

func (r *ListTicketsRequest) ToQuery(actorID uint) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		ActorID:    actorID,
		Status:     r.Status,
		CategoryID: r.CategoryID,
		PriorityID: r.PriorityID,
		Search:     r.Search,
		Page:       r.Page,
		PageSize:   r.PageSize,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if page < 1 {
		page = constants.DefaultPage
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	req := &ListTicketsRequest{
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid category_id")
		}
		id := uint(categoryID)
		req.CategoryID = &id
	}

	if priorityIDStr := c.Query("priority_id"); priorityIDStr != "" {
		priorityID, err := strconv.ParseUint(priorityIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority_id")
		}
		id := uint(priorityID)
		req.PriorityID = &id
	}

	return req, nil
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name)
	}
	return uint(id), nil
}
