package http

import (
	"github.com/gin-gonic/gin"

	"github.com/padmeamd/uroom/internal/service"
)

// UserIDHeader 携带当前用户标识的请求头
const UserIDHeader = "X-User-ID"

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func SuccessResponse(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// currentUserID 读取请求头中的用户 ID，缺省为演示用户
func currentUserID(c *gin.Context) string {
	if id := c.GetHeader(UserIDHeader); id != "" {
		return id
	}
	return service.DefaultUserID
}
