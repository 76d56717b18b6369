package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/padmeamd/uroom/internal/service"
)

// HandleServiceError 把 service 层错误映射为 HTTP 响应
func HandleServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error(), "fields": verr.Fields})
	case errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrQuizNotFound),
		errors.Is(err, service.ErrUserNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidDirection),
		errors.Is(err, service.ErrInvalidRoom),
		errors.Is(err, service.ErrInvalidQuiz),
		errors.Is(err, service.ErrInvalidAnswers),
		errors.Is(err, service.ErrInvalidMessage):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionExhausted),
		errors.Is(err, service.ErrQuizNotRequired):
		ErrorResponse(c, http.StatusConflict, err.Error())
	default:
		logrus.WithError(err).Error("Unhandled internal server error")
		ErrorResponse(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// bindError 响应请求体解析失败
func bindError(c *gin.Context, handler string, err error) {
	logrus.WithError(err).Warnf("Handler.%s: Invalid input format", handler)
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
}
