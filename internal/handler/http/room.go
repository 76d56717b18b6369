package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/service"
)

// defaultTrendingLimit 热门标签默认返回数量
const defaultTrendingLimit = 10

// RoomHandler 封装了房间目录相关的 HTTP 处理逻辑
type RoomHandler struct {
	roomService *service.RoomService
}

// NewRoomHandler 创建 RoomHandler 实例
func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	if roomService == nil {
		panic("RoomService cannot be nil for RoomHandler")
	}
	return &RoomHandler{roomService: roomService}
}

// ListRooms 列出全部房间，带 q 参数时按标题或标签搜索
func (h *RoomHandler) ListRooms(c *gin.Context) {
	ctx := c.Request.Context()
	query := c.Query("q")
	var (
		rooms []domain.Room
		err   error
	)
	if query != "" {
		rooms, err = h.roomService.SearchRooms(ctx, query)
	} else {
		rooms, err = h.roomService.ListRooms(ctx)
	}
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"rooms": rooms})
}

// TrendingTags 返回使用最多的标签
func (h *RoomHandler) TrendingTags(c *gin.Context) {
	limit := defaultTrendingLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			ErrorResponse(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	tags, err := h.roomService.TrendingTags(c.Request.Context(), limit)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"tags": tags})
}

// GetRoom 返回单个房间
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.roomService.FindRoomByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, room)
}

// CreateRoom 处理创建新房间的请求，当前用户成为房主
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	userID := currentUserID(c)
	var in service.CreateRoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, "CreateRoom", err)
		return
	}
	room, err := h.roomService.CreateRoom(c.Request.Context(), userID, in)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{"user_id": userID, "room_id": room.ID}).Info("Handler.CreateRoom: Room created successfully")
	SuccessResponse(c, http.StatusCreated, room)
}
