package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/padmeamd/uroom/internal/service"
)

// ChatHandler 处理房间群聊
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler 创建 ChatHandler 实例
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	if chatService == nil {
		panic("ChatService cannot be nil for ChatHandler")
	}
	return &ChatHandler{chatService: chatService}
}

// SendMessageRequest 发送消息请求体
type SendMessageRequest struct {
	Text string `json:"text"`
}

func (h *ChatHandler) ListConversations(c *gin.Context) {
	convs, err := h.chatService.ListConversations(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"conversations": convs})
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	msgs, err := h.chatService.ListMessages(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"messages": msgs})
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "SendMessage", err)
		return
	}
	msg, err := h.chatService.SendMessage(c.Request.Context(), c.Param("roomId"), currentUserID(c), req.Text)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, msg)
}
