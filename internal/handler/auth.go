package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/primebox/storefront/config"
	"github.com/primebox/storefront/internal/constants"
	"github.com/primebox/storefront/internal/dto"
	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/internal/middleware"
	"github.com/primebox/storefront/internal/service"
	"github.com/primebox/storefront/pkg/logger"
	"github.com/primebox/storefront/pkg/validation"
	"go.uber.org/zap"
)

type AuthHandler struct {
	userService *service.UserService
	cookie      config.SessionConfig
}

func NewAuthHandler(userService *service.UserService, cookie config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		cookie:      cookie,
	}
}

// Login authenticates a staff member and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	response, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.GetLogger().Warn("Login failed",
			zap.String("email", req.Email),
			zap.Error(err))
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Authentication failed", apperrors.GetErrorMessage(err)))
		return
	}

	c.SetCookie(
		h.cookie.CookieName,
		response.Token,
		response.ExpiresIn,
		"/",
		h.cookie.CookieDomain,
		h.cookie.CookieSecure,
		true, // httpOnly
	)

	c.JSON(http.StatusOK, response)
}

// Logout revokes every outstanding session for the user and clears the
// cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
		return
	}

	if err := h.userService.Logout(c.Request.Context(), user.ID); err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Logout failed", apperrors.GetErrorMessage(err)))
		return
	}

	c.SetCookie(h.cookie.CookieName, "", -1, "/", h.cookie.CookieDomain, h.cookie.CookieSecure, true)
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Logout successful"))
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
		return
	}

	response, err := h.userService.GetByID(c.Request.Context(), user.ID)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to load account", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, response)
}
