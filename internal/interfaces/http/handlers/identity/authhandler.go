package identity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/identity/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	registerUC        usecases.RegisterExecutor
	loginUC           usecases.LoginExecutor
	refreshTokenUC    usecases.RefreshTokenExecutor
	getCurrentUserUC  usecases.GetCurrentUserExecutor
	listTechniciansUC usecases.ListTechniciansExecutor
	assignRoleUC      usecases.AssignRoleExecutor
	logger            logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	refreshTokenUC usecases.RefreshTokenExecutor,
	getCurrentUserUC usecases.GetCurrentUserExecutor,
	listTechniciansUC usecases.ListTechniciansExecutor,
	assignRoleUC usecases.AssignRoleExecutor,
) *AuthHandler {
	return &AuthHandler{
		registerUC:        registerUC,
		loginUC:           loginUC,
		refreshTokenUC:    refreshTokenUC,
		getCurrentUserUC:  getCurrentUserUC,
		listTechniciansUC: listTechniciansUC,
		assignRoleUC:      assignRoleUC,
		logger:            logger.NewLogger(),
	}
}

func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get(constants.ContextKeyUserID)
	id, _ := userID.(uint)
	return id
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged in", result)
}

// RefreshToken handles POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.refreshTokenUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed", result)
}

// GetCurrentUser handles GET /auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	query := usecases.GetCurrentUserQuery{UserID: currentUserID(c)}

	result, err := h.getCurrentUserUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTechnicians handles GET /users/technicians
func (h *AuthHandler) ListTechnicians(c *gin.Context) {
	query := usecases.ListTechniciansQuery{ActorID: currentUserID(c)}

	result, err := h.listTechniciansUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AssignRole handles PUT /users/:id/role
func (h *AuthHandler) AssignRole(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || userID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid user id"))
		return
	}

	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid or missing role")
		return
	}

	cmd := usecases.AssignRoleCommand{
		UserID:  uint(userID),
		Role:    req.Role,
		ActorID: currentUserID(c),
	}

	result, err := h.assignRoleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role assigned", result)
}
