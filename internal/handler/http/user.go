package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/padmeamd/uroom/internal/service"
)

// UserHandler 提供用户资料查询
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler 创建 UserHandler 实例
func NewUserHandler(userService *service.UserService) *UserHandler {
	if userService == nil {
		panic("UserService cannot be nil for UserHandler")
	}
	return &UserHandler{userService: userService}
}

// GetUser 返回用户资料，id 为 me 时取请求头中的当前用户
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	if id == "me" {
		id = currentUserID(c)
	}
	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, user)
}
