package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velandev/website/internal/app/models/dto"
	"github.com/velandev/website/internal/app/services"
	"github.com/velandev/website/internal/middleware"
)

// ContentController serves the structured content of the public pages
type ContentController struct {
	contentService services.ContentService
}

// NewContentController creates a new ContentController
func NewContentController(contentService services.ContentService) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// ListPages returns the available page slugs
// @Summary List site pages
// @Description Returns the slugs of the public content pages in navigation order
// @Tags content
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Page slugs"
// @Router /pages [get]
func (c *ContentController) ListPages(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.contentService.ListPages()))
}

// GetPage returns the content of a single page
// @Summary Get page content
// @Description Returns the structured content of one public page
// @Tags content
// @Produce json
// @Param slug path string true "Page slug" Enums(home,about,services,products,industries,careers,contact)
// @Success 200 {object} dto.APIResponse{data=models.Page} "Page content"
// @Failure 404 {object} dto.ErrorResponse "Page not found"
// @Router /pages/{slug} [get]
func (c *ContentController) GetPage(ctx *gin.Context) {
	page, err := c.contentService.GetPage(ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(page))
}
