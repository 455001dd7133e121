package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resolvpay/backend/internal/application/usecase/chat"
	"github.com/resolvpay/backend/internal/integration/entrypoint/dto"
)

// ChatController handles the assistant endpoints.
type ChatController struct {
	processUseCase *chat.ProcessMessageUseCase
}

// NewChatController creates a new chat controller instance.
func NewChatController(processUseCase *chat.ProcessMessageUseCase) *ChatController {
	return &ChatController{processUseCase: processUseCase}
}

// PostMessage handles POST /chat/messages requests.
func (c *ChatController) PostMessage(ctx *gin.Context) {
	var req dto.ChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.processUseCase.Execute(ctx.Request.Context(), chat.ProcessMessageInput{
		Message: req.Message,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process message",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatMessageResponse{
		Reply:  output.Reply,
		Intent: output.Intent,
	})
}

// History handles GET /chat/messages requests.
func (c *ChatController) History(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToChatHistoryResponse(c.processUseCase.History()))
}
