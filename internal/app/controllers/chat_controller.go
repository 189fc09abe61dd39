package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velandev/website/internal/app/models/dto"
	"github.com/velandev/website/internal/app/services"
)

// ChatController handles chat widget messages
type ChatController struct {
	chatService services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// Reply returns the canned reply for a chat widget message
// @Summary Chat widget reply
// @Description Returns a scripted FAQ reply chosen by keyword matching; the same message always yields the same reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Visitor message"
// @Success 200 {object} dto.APIResponse{data=dto.ChatResponse} "Canned reply"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /chat [post]
func (c *ChatController) Reply(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid chat payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	reply := c.chatService.Reply(req.Message)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ChatResponse{Reply: reply}))
}
