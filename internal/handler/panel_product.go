package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/primebox/storefront/internal/constants"
	"github.com/primebox/storefront/internal/dto"
	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/internal/service"
	"github.com/primebox/storefront/pkg/logger"
	"github.com/primebox/storefront/pkg/validation"
	"go.uber.org/zap"
)

// PanelProductHandler manages the product catalog from the panel.
type PanelProductHandler struct {
	productService *service.ProductService
	fileService    *service.FileService
}

func NewPanelProductHandler(productService *service.ProductService, fileService *service.FileService) *PanelProductHandler {
	return &PanelProductHandler{
		productService: productService,
		fileService:    fileService,
	}
}

// List returns all products, active or not.
func (h *PanelProductHandler) List(c *gin.Context) {
	pagination := constants.ParsePaginationParams(c)

	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, validation.Message(err)))
		return
	}

	products, total, pageTotal, err := h.productService.GetAll(
		c.Request.Context(), filter, pagination.Limit, pagination.Offset, pagination.Search, false)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to load products", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, pagination.Page, pageTotal, products))
}

// Get returns one product by ID.
func (h *PanelProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid product ID"))
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Product not found", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *PanelProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to create product", apperrors.GetErrorMessage(err)))
		return
	}

	logger.GetLogger().Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("slug", product.Slug))

	c.JSON(http.StatusCreated, product)
}

func (h *PanelProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid product ID"))
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to update product", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, product)
}

// UploadImage stores a product image and attaches it to the product.
func (h *PanelProductHandler) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid product ID"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Image file is required", err.Error()))
		return
	}

	position, _ := strconv.Atoi(c.DefaultPostForm("position", "0"))

	fileName, err := h.fileService.SaveImage(fileHeader)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to store image", apperrors.GetErrorMessage(err)))
		return
	}

	if err := h.productService.AddImage(c.Request.Context(), id, fileName, position); err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to attach image", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"file_name": fileName})
}

func (h *PanelProductHandler) DeleteImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid product ID"))
		return
	}

	imageID, ok := parseIDParam(c, "imageId")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid image ID"))
		return
	}

	if err := h.productService.DeleteImage(c.Request.Context(), id, imageID); err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to delete image", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(constants.MsgDeleted))
}

func (h *PanelProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid product ID"))
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to delete product", apperrors.GetErrorMessage(err)))
		return
	}

	logger.GetLogger().Info("Product deleted", zap.Uint("product_id", id))

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(constants.MsgDeleted))
}
