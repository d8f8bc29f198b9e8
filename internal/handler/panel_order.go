package handler

import (
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

// PanelOrderHandler manages orders and leads from the panel.
type PanelOrderHandler struct {
	orderService *service.OrderService
}

func NewPanelOrderHandler(orderService *service.OrderService) *PanelOrderHandler {
	return &PanelOrderHandler{orderService: orderService}
}

// List returns orders, optionally filtered by status. Listing lead
// views also sweeps stale leads to EXPIRED before the query runs.
func (h *PanelOrderHandler) List(c *gin.Context) {
	pagination := constants.ParsePaginationParams(c)
	status := c.Query("status")

	orders, total, pageTotal, err := h.orderService.List(
		c.Request.Context(), status, pagination.Limit, pagination.Offset)
	if err != nil {
		httpStatus := apperrors.ToHTTPStatus(err)
		c.JSON(httpStatus, constants.BuildErrorResponse("Failed to load orders", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, pagination.Page, pageTotal, orders))
}

func (h *PanelOrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid order ID"))
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Order not found", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, order)
}

// SetStatus moves an order through its lifecycle. Illegal transitions
// are rejected with a conflict.
func (h *PanelOrderHandler) SetStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid order ID"))
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, ""))
		return
	}

	order, err := h.orderService.SetStatus(c.Request.Context(), id, req.Status, user.ID)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to update order status", apperrors.GetErrorMessage(err)))
		return
	}

	logger.GetLogger().Info("Order status changed",
		zap.Uint("order_id", id),
		zap.String("status", order.Status),
		zap.Uint("changed_by", user.ID))

	c.JSON(http.StatusOK, order)
}

// Assign hands an order to a staff member.
func (h *PanelOrderHandler) Assign(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid order ID"))
		return
	}

	var req dto.AssignOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	if err := h.orderService.Assign(c.Request.Context(), id, req.StaffID); err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to assign order", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(constants.MsgUpdated))
}

// Customers returns the aggregated customer listing derived from
// order history.
func (h *PanelOrderHandler) Customers(c *gin.Context) {
	pagination := constants.ParsePaginationParams(c)

	customers, total, pageTotal, err := h.orderService.ListCustomers(
		c.Request.Context(), pagination.Limit, pagination.Offset, pagination.Search)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to load customers", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, pagination.Page, pageTotal, customers))
}
