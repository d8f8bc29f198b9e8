package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/primebox/storefront/internal/constants"
	"github.com/primebox/storefront/internal/dto"
	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/internal/service"
	"github.com/primebox/storefront/pkg/validation"
)

// PanelPlanHandler manages rental plans from the panel.
type PanelPlanHandler struct {
	planService *service.RentalPlanService
}

func NewPanelPlanHandler(planService *service.RentalPlanService) *PanelPlanHandler {
	return &PanelPlanHandler{planService: planService}
}

func (h *PanelPlanHandler) List(c *gin.Context) {
	plans, err := h.planService.GetAll(c.Request.Context(), false)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to load rental plans", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{constants.ResponseFieldData: plans})
}

func (h *PanelPlanHandler) Create(c *gin.Context) {
	var req dto.CreateRentalPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to create rental plan", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *PanelPlanHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid plan ID"))
		return
	}

	var req dto.UpdateRentalPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	plan, err := h.planService.Update(c.Request.Context(), id, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to update rental plan", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *PanelPlanHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid plan ID"))
		return
	}

	if err := h.planService.Delete(c.Request.Context(), id); err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to delete rental plan", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(constants.MsgDeleted))
}
