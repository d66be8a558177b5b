package chat

import (
	"context"

	"ratein-backend/utils"

	"github.com/gin-gonic/gin"
)

// GinSSEHandler 基于 Gin 的事件处理器，将编排器的输出实时推给客户端
type GinSSEHandler struct {
	Ctx     *gin.Context
	Session string
}

var _ Events = &GinSSEHandler{}

func NewGinSSEHandler(ctx *gin.Context, session string) *GinSSEHandler {
	return &GinSSEHandler{
		Ctx:     ctx,
		Session: session,
	}
}

func (h *GinSSEHandler) HandleAssistantMessage(ctx context.Context, content string) {
	utils.SendSSEMessage(h.Ctx, utils.EventAssistantMessage, content)
}

func (h *GinSSEHandler) HandleToolResult(ctx context.Context, result string) {
	utils.SendSSEMessage(h.Ctx, utils.EventToolCallResult, result)
}
