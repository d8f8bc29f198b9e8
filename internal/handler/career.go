package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/primebox/storefront/internal/constants"
	"github.com/primebox/storefront/internal/dto"
	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/internal/service"
	"github.com/primebox/storefront/pkg/logger"
	"github.com/primebox/storefront/pkg/validation"
	"go.uber.org/zap"
)

// CareerHandler handles public job applications and their review in
// the panel.
type CareerHandler struct {
	careerService *service.CareerService
}

func NewCareerHandler(careerService *service.CareerService) *CareerHandler {
	return &CareerHandler{careerService: careerService}
}

// Apply accepts a multipart application form with a PDF resume.
func (h *CareerHandler) Apply(c *gin.Context) {
	var req dto.CareerApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid application form", validation.Message(err)))
		return
	}

	resume, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Resume file is required", err.Error()))
		return
	}

	application, err := h.careerService.Apply(c.Request.Context(), &req, resume)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to submit application", apperrors.GetErrorMessage(err)))
		return
	}

	logger.GetLogger().Info("Career application received",
		zap.Uint("application_id", application.ID),
		zap.String("email", application.Email))

	c.JSON(http.StatusCreated, application)
}

// List returns applications for panel review.
func (h *CareerHandler) List(c *gin.Context) {
	pagination := constants.ParsePaginationParams(c)

	applications, total, pageTotal, err := h.careerService.GetAll(
		c.Request.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to load applications", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, pagination.Page, pageTotal, applications))
}

// SetReviewed marks an application as reviewed (or not).
func (h *CareerHandler) SetReviewed(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid application ID"))
		return
	}

	var req dto.SetReviewedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	if err := h.careerService.SetReviewed(c.Request.Context(), id, *req.Reviewed); err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to update application", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(constants.MsgUpdated))
}
