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

// StorefrontHandler serves the public catalog and order intake.
type StorefrontHandler struct {
	productService  *service.ProductService
	categoryService *service.CategoryService
	planService     *service.RentalPlanService
	orderService    *service.OrderService
}

func NewStorefrontHandler(
	productService *service.ProductService,
	categoryService *service.CategoryService,
	planService *service.RentalPlanService,
	orderService *service.OrderService,
) *StorefrontHandler {
	return &StorefrontHandler{
		productService:  productService,
		categoryService: categoryService,
		planService:     planService,
		orderService:    orderService,
	}
}

// Home returns the home page data set: featured products, active
// categories and active rental plans. A failed lookup degrades to an
// empty section rather than failing the page.
func (h *StorefrontHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	featured, err := h.productService.GetFeatured(ctx, 8)
	if err != nil {
		logger.GetLogger().Error("Failed to load featured products", zap.Error(err))
		featured = []dto.ProductResponse{}
	}

	categories, err := h.categoryService.GetAll(ctx, true)
	if err != nil {
		logger.GetLogger().Error("Failed to load categories", zap.Error(err))
		categories = []dto.CategoryResponse{}
	}

	plans, err := h.planService.GetAll(ctx, true)
	if err != nil {
		logger.GetLogger().Error("Failed to load rental plans", zap.Error(err))
		plans = []dto.RentalPlanResponse{}
	}

	c.JSON(http.StatusOK, gin.H{
		"featured":   featured,
		"categories": categories,
		"plans":      plans,
	})
}

// ListProducts serves the shop listing with filters and pagination.
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	pagination := constants.ParsePaginationParams(c)

	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, validation.Message(err)))
		return
	}

	products, total, pageTotal, err := h.productService.GetAll(
		c.Request.Context(), filter, pagination.Limit, pagination.Offset, pagination.Search, true)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to load products", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, pagination.Page, pageTotal, products))
}

// GetProduct serves the product detail page and bumps the view counter.
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	slug := c.Param("slug")

	product, err := h.productService.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Product not found", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListCategories serves active categories.
func (h *StorefrontHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAll(c.Request.Context(), true)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to load categories", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{constants.ResponseFieldData: categories})
}

// ListPlans serves active rental plans.
func (h *StorefrontHandler) ListPlans(c *gin.Context) {
	plans, err := h.planService.GetAll(c.Request.Context(), true)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to load rental plans", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{constants.ResponseFieldData: plans})
}

// SubmitQuote records a quote request as a new lead.
func (h *StorefrontHandler) SubmitQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	order, err := h.orderService.CreateQuote(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to submit quote", apperrors.GetErrorMessage(err)))
		return
	}

	logger.GetLogger().Info("Quote submitted",
		zap.Uint("order_id", order.ID),
		zap.String("customer_email", order.CustomerEmail))

	c.JSON(http.StatusCreated, order)
}

// Checkout records a purchase as a pending order.
func (h *StorefrontHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	order, err := h.orderService.CreateCheckout(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Checkout failed", apperrors.GetErrorMessage(err)))
		return
	}

	logger.GetLogger().Info("Checkout completed",
		zap.Uint("order_id", order.ID),
		zap.String("customer_email", order.CustomerEmail))

	c.JSON(http.StatusCreated, order)
}
