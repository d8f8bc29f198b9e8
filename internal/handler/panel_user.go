package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/primebox/storefront/internal/constants"
	"github.com/primebox/storefront/internal/dto"
	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/internal/middleware"
	"github.com/primebox/storefront/internal/service"
	"github.com/primebox/storefront/pkg/logger"
	"github.com/primebox/storefront/pkg/validation"
	"go.uber.org/zap"
)

// PanelUserHandler manages staff accounts. Its routes are restricted
// to ADMIN by the session gate.
type PanelUserHandler struct {
	userService *service.UserService
}

func NewPanelUserHandler(userService *service.UserService) *PanelUserHandler {
	return &PanelUserHandler{userService: userService}
}

func (h *PanelUserHandler) List(c *gin.Context) {
	pagination := constants.ParsePaginationParams(c)

	users, total, pageTotal, err := h.userService.GetAll(
		c.Request.Context(), pagination.Limit, pagination.Offset, pagination.Search)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to fetch staff", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, pagination.Page, pageTotal, users))
}

func (h *PanelUserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid user ID"))
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to fetch user", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *PanelUserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to create user", apperrors.GetErrorMessage(err)))
		return
	}

	logger.GetLogger().Info("Staff account created",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("role", user.Role))

	c.JSON(http.StatusCreated, user)
}

func (h *PanelUserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid user ID"))
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to update user", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdatePassword changes a password after verifying the current one.
// A successful change revokes the account's other sessions.
func (h *PanelUserHandler) UpdatePassword(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid user ID"))
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), id, &req); err != nil {
		status := apperrors.ToHTTPStatus(err)

		var message string
		switch {
		case errors.Is(err, apperrors.ErrIncorrectPassword):
			message = "Current password is incorrect"
		case errors.Is(err, apperrors.ErrPasswordMismatch):
			message = "New password and confirmation do not match"
		case errors.Is(err, apperrors.ErrUserNotFound):
			message = "User not found"
		default:
			message = "Failed to update password"
		}

		c.JSON(status, constants.BuildErrorResponse(message, apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Password updated successfully"))
}

// SetActive enables or disables an account. Disabling revokes all of
// its sessions.
func (h *PanelUserHandler) SetActive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid user ID"))
		return
	}

	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	if err := h.userService.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to update account", apperrors.GetErrorMessage(err)))
		return
	}

	logger.GetLogger().Info("Staff account state changed",
		zap.Uint("user_id", id),
		zap.Bool("active", *req.Active))

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(constants.MsgUpdated))
}

func (h *PanelUserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid user ID"))
		return
	}

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, ""))
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id, actor.ID); err != nil {
		status := apperrors.ToHTTPStatus(err)

		var message string
		switch {
		case errors.Is(err, apperrors.ErrSelfDeletion):
			message = "Users cannot delete themselves"
		case errors.Is(err, apperrors.ErrUserNotFound):
			message = "User not found"
		default:
			message = "Failed to delete user"
		}

		c.JSON(status, constants.BuildErrorResponse(message, apperrors.GetErrorMessage(err)))
		return
	}

	logger.GetLogger().Info("Staff account deleted",
		zap.Uint("user_id", id),
		zap.Uint("deleted_by", actor.ID))

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("User deleted successfully"))
}
