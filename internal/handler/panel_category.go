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

// PanelCategoryHandler manages categories from the panel.
type PanelCategoryHandler struct {
	categoryService *service.CategoryService
	fileService     *service.FileService
}

func NewPanelCategoryHandler(categoryService *service.CategoryService, fileService *service.FileService) *PanelCategoryHandler {
	return &PanelCategoryHandler{
		categoryService: categoryService,
		fileService:     fileService,
	}
}

func (h *PanelCategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.GetAll(c.Request.Context(), false)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to load categories", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{constants.ResponseFieldData: categories})
}

func (h *PanelCategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to create category", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *PanelCategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid category ID"))
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.Message(err)))
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to update category", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, category)
}

// UploadImage stores a category image and records it on the category.
func (h *PanelCategoryHandler) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid category ID"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Image file is required", err.Error()))
		return
	}

	fileName, err := h.fileService.SaveImage(fileHeader)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to store image", apperrors.GetErrorMessage(err)))
		return
	}

	if err := h.categoryService.SetImage(c.Request.Context(), id, fileName); err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to attach image", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"file_name": fileName})
}

func (h *PanelCategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "Invalid category ID"))
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to delete category", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(constants.MsgDeleted))
}
