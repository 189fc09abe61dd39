package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velandev/website/internal/app/models/dto"
	"github.com/velandev/website/internal/app/services"
	"github.com/velandev/website/internal/middleware"
)

// ContactController handles contact form submissions
type ContactController struct {
	contactService services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// SubmitInquiry validates and forwards a contact form submission
// @Summary Submit a contact inquiry
// @Description Emails the inquiry to the contact inbox; nothing is persisted
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact fields"
// @Success 200 {object} dto.APIResponse "Inquiry sent"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid fields"
// @Failure 500 {object} dto.ErrorResponse "Email service not configured"
// @Failure 502 {object} dto.ErrorResponse "Failed to send email"
// @Router /contact [post]
func (c *ContactController) SubmitInquiry(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid contact payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.contactService.SubmitInquiry(req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"ok": true}))
}
