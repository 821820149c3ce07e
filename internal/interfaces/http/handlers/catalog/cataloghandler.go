package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/catalog/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	IsActive *bool   `json:"is_active"`
}

type PriorityRequest struct {
	Name string `json:"name" binding:"required,max=50"`
	Rank int    `json:"rank" binding:"min=0"`
}

type CatalogHandler struct {
	createCategoryUC usecases.CreateCategoryExecutor
	updateCategoryUC usecases.UpdateCategoryExecutor
	deleteCategoryUC usecases.DeleteCategoryExecutor
	listCategoriesUC usecases.ListCategoriesExecutor
	createPriorityUC usecases.CreatePriorityExecutor
	updatePriorityUC usecases.UpdatePriorityExecutor
	deletePriorityUC usecases.DeletePriorityExecutor
	listPrioritiesUC usecases.ListPrioritiesExecutor
	logger           logger.Interface
}

func NewCatalogHandler(
	createCategoryUC usecases.CreateCategoryExecutor,
	updateCategoryUC usecases.UpdateCategoryExecutor,
	deleteCategoryUC usecases.DeleteCategoryExecutor,
	listCategoriesUC usecases.ListCategoriesExecutor,
	createPriorityUC usecases.CreatePriorityExecutor,
	updatePriorityUC usecases.UpdatePriorityExecutor,
	deletePriorityUC usecases.DeletePriorityExecutor,
	listPrioritiesUC usecases.ListPrioritiesExecutor,
) *CatalogHandler {
	return &CatalogHandler{
		createCategoryUC: createCategoryUC,
		updateCategoryUC: updateCategoryUC,
		deleteCategoryUC: deleteCategoryUC,
		listCategoriesUC: listCategoriesUC,
		createPriorityUC: createPriorityUC,
		updatePriorityUC: updatePriorityUC,
		deletePriorityUC: deletePriorityUC,
		listPrioritiesUC: listPrioritiesUC,
		logger:           logger.NewLogger(),
	}
}

func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get(constants.ContextKeyUserID)
	id, _ := userID.(uint)
	return id
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid id")
	}
	return uint(id), nil
}

// CreateCategory handles POST /categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CreateCategoryCommand{Name: req.Name, ActorID: currentUserID(c)}

	result, err := h.createCategoryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created")
}

// UpdateCategory handles PATCH /categories/:id
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.UpdateCategoryCommand{
		CategoryID: categoryID,
		Name:       req.Name,
		IsActive:   req.IsActive,
		ActorID:    currentUserID(c),
	}

	result, err := h.updateCategoryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated", result)
}

// DeleteCategory handles DELETE /categories/:id
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteCategoryCommand{CategoryID: categoryID, ActorID: currentUserID(c)}

	if err := h.deleteCategoryUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	activeOnly := c.DefaultQuery("active_only", "false") == "true"

	result, err := h.listCategoriesUC.Execute(c.Request.Context(), usecases.ListCategoriesQuery{
		ActiveOnly: activeOnly,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreatePriority handles POST /priorities
func (h *CatalogHandler) CreatePriority(c *gin.Context) {
	var req PriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CreatePriorityCommand{Name: req.Name, Rank: req.Rank, ActorID: currentUserID(c)}

	result, err := h.createPriorityUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Priority created")
}

// UpdatePriority handles PUT /priorities/:id
func (h *CatalogHandler) UpdatePriority(c *gin.Context) {
	priorityID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.UpdatePriorityCommand{
		PriorityID: priorityID,
		Name:       req.Name,
		Rank:       req.Rank,
		ActorID:    currentUserID(c),
	}

	result, err := h.updatePriorityUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Priority updated", result)
}

// DeletePriority handles DELETE /priorities/:id
func (h *CatalogHandler) DeletePriority(c *gin.Context) {
	priorityID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeletePriorityCommand{PriorityID: priorityID, ActorID: currentUserID(c)}

	if err := h.deletePriorityUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListPriorities handles GET /priorities
func (h *CatalogHandler) ListPriorities(c *gin.Context) {
	result, err := h.listPrioritiesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
