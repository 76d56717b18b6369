package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/service"
)

// QuizHandler 处理项目房间的问卷和申请
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler 创建 QuizHandler 实例
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	if quizService == nil {
		panic("QuizService cannot be nil for QuizHandler")
	}
	return &QuizHandler{quizService: quizService}
}

// SaveQuizRequest 整体替换问卷的请求体
type SaveQuizRequest struct {
	Questions []domain.QuizQuestion `json:"questions"`
}

// ApplicationRequest 提交问卷申请的请求体
type ApplicationRequest struct {
	Answers []domain.Answer `json:"answers"`
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.quizService.GetQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, quiz)
}

func (h *QuizHandler) SaveQuiz(c *gin.Context) {
	var req SaveQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "SaveQuiz", err)
		return
	}
	quiz, err := h.quizService.SaveQuiz(c.Request.Context(), c.Param("id"), req.Questions)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, quiz)
}

// SubmitApplication 提交问卷答案，申请进入待审批状态
func (h *QuizHandler) SubmitApplication(c *gin.Context) {
	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "SubmitApplication", err)
		return
	}
	joinReq, err := h.quizService.SubmitApplication(c.Request.Context(), c.Param("id"), currentUserID(c), req.Answers)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusAccepted, joinReq)
}
