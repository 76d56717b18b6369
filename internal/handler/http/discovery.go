package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/padmeamd/uroom/internal/service"
)

// DiscoveryHandler 处理发现会话的滑动操作
type DiscoveryHandler struct {
	discoveryService *service.DiscoveryService
}

// NewDiscoveryHandler 创建 DiscoveryHandler 实例
func NewDiscoveryHandler(discoveryService *service.DiscoveryService) *DiscoveryHandler {
	if discoveryService == nil {
		panic("DiscoveryService cannot be nil for DiscoveryHandler")
	}
	return &DiscoveryHandler{discoveryService: discoveryService}
}

// SwipeRequest 滑动请求体
type SwipeRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// GestureRequest 拖动手势请求体，offset_x 为水平位移
type GestureRequest struct {
	OffsetX *float64 `json:"offset_x" binding:"required"`
}

// FilterRequest 过滤器请求体，未知取值按 all 处理
type FilterRequest struct {
	Urgency string `json:"urgency"`
	Type    string `json:"type"`
}

func (h *DiscoveryHandler) StartSession(c *gin.Context) {
	userID := currentUserID(c)
	view, err := h.discoveryService.StartSession(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{"user_id": userID, "session_id": view.ID}).Info("Handler.StartSession: Session started")
	SuccessResponse(c, http.StatusCreated, view)
}

func (h *DiscoveryHandler) GetSession(c *gin.Context) {
	view, err := h.discoveryService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, view)
}

func (h *DiscoveryHandler) EndSession(c *gin.Context) {
	if err := h.discoveryService.EndSession(c.Request.Context(), c.Param("id")); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DiscoveryHandler) Swipe(c *gin.Context) {
	var req SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "Swipe", err)
		return
	}
	result, err := h.discoveryService.Swipe(c.Request.Context(), c.Param("id"), req.Direction)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, result)
}

func (h *DiscoveryHandler) Gesture(c *gin.Context) {
	var req GestureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "Gesture", err)
		return
	}
	result, err := h.discoveryService.Gesture(c.Request.Context(), c.Param("id"), *req.OffsetX)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, result)
}

func (h *DiscoveryHandler) Undo(c *gin.Context) {
	result, err := h.discoveryService.Undo(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, result)
}

func (h *DiscoveryHandler) ChangeFilter(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "ChangeFilter", err)
		return
	}
	view, err := h.discoveryService.ChangeFilter(c.Request.Context(), c.Param("id"), req.Urgency, req.Type)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, view)
}
