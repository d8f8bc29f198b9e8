package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/primebox/storefront/internal/constants"
	apperrors "github.com/primebox/storefront/internal/errors"
	"github.com/primebox/storefront/internal/service"
)

// FileHandler serves stored product and category images.
type FileHandler struct {
	fileService *service.FileService
}

func NewFileHandler(fileService *service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// ServeImage streams a stored image by name. Names that fail
// validation are rejected before touching the filesystem; stored
// images are content-addressed and never change, so they are served
// with an immutable cache policy.
func (h *FileHandler) ServeImage(c *gin.Context) {
	name := c.Param("name")

	path, contentType, err := h.fileService.ResolveImage(name)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Image unavailable", apperrors.GetErrorMessage(err)))
		return
	}

	c.Header(constants.HeaderCacheControl, constants.CacheControlImmutable)
	c.Header(constants.HeaderContentType, contentType)
	c.File(path)
}
