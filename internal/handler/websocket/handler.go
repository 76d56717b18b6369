package websocket

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/hub"
	"github.com/padmeamd/uroom/internal/service"
)

// SessionFinder 校验发现会话是否存在
type SessionFinder interface {
	GetSession(ctx context.Context, id string) (*service.SessionView, error)
}

// RoomFinder 校验房间是否存在
type RoomFinder interface {
	FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error)
}

// WebSocketHandler 负责 WebSocket 升级请求和客户端注册。
// 连接只接收服务端推送：会话通知和房间群聊消息。
type WebSocketHandler struct {
	upgrader websocket.Upgrader
	hub      *hub.Hub
	sessions SessionFinder
	rooms    RoomFinder
}

// NewWebSocketHandler 创建 WebSocketHandler 实例。allowedOrigin 为空时不校验来源。
func NewWebSocketHandler(h *hub.Hub, sessions SessionFinder, rooms RoomFinder, allowedOrigin string) *WebSocketHandler {
	if h == nil {
		panic("Hub cannot be nil for WebSocketHandler")
	}
	if sessions == nil || rooms == nil {
		panic("services cannot be nil for WebSocketHandler")
	}
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return allowedOrigin == "" || origin == "" || origin == allowedOrigin
		},
	}
	return &WebSocketHandler{upgrader: upgrader, hub: h, sessions: sessions, rooms: rooms}
}

// HandleSession 订阅发现会话的通知
// URL 格式: /ws/sessions/{id}
func (h *WebSocketHandler) HandleSession(c *gin.Context) {
	id := c.Param("id")
	logCtx := logrus.WithField("session_id", id)
	if _, err := h.sessions.GetSession(c.Request.Context(), id); err != nil {
		h.rejectNotFound(c, logCtx, err, service.ErrSessionNotFound)
		return
	}
	h.serve(c, logCtx, hub.SessionChannel(id))
}

// HandleChat 订阅房间群聊
// URL 格式: /ws/chats/{roomId}
func (h *WebSocketHandler) HandleChat(c *gin.Context) {
	roomID := c.Param("roomId")
	logCtx := logrus.WithField("room_id", roomID)
	if _, err := h.rooms.FindRoomByID(c.Request.Context(), roomID); err != nil {
		h.rejectNotFound(c, logCtx, err, service.ErrRoomNotFound)
		return
	}
	h.serve(c, logCtx, hub.ChatChannel(roomID))
}

// rejectNotFound 在升级前返回 HTTP 错误
func (h *WebSocketHandler) rejectNotFound(c *gin.Context, logCtx *logrus.Entry, err, notFound error) {
	if errors.Is(err, notFound) {
		logCtx.WithError(err).Warn("WS Handler: Target not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	logCtx.WithError(err).Error("WS Handler: Error validating target")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate subscription"})
}

func (h *WebSocketHandler) serve(c *gin.Context, logCtx *logrus.Entry, channel string) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 已经写回了 HTTP 错误
		logCtx.WithError(err).Error("WS Handler: Failed to upgrade connection")
		return
	}
	client := hub.NewClient(h.hub, conn, channel)
	if !h.hub.Register(client) {
		logCtx.Error("WS Handler: Hub message channel full, failed to register client")
		conn.Close()
		return
	}
	go client.Run()
	logCtx.WithField("channel", channel).Info("WS Handler: Client subscribed")
}
