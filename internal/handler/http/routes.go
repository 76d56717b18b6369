package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers 汇总所有 REST 处理器
type Handlers struct {
	Rooms     *RoomHandler
	Quizzes   *QuizHandler
	Discovery *DiscoveryHandler
	Chats     *ChatHandler
	Users     *UserHandler
}

// RegisterRoutes 在 router 上注册 /ping 和 /api 路由
func RegisterRoutes(router gin.IRouter, h Handlers) {
	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })

	api := router.Group("/api")
	roomRoutes := api.Group("/rooms")
	{
		roomRoutes.GET("", h.Rooms.ListRooms)
		roomRoutes.POST("", h.Rooms.CreateRoom)
		roomRoutes.GET("/trending-tags", h.Rooms.TrendingTags)
		roomRoutes.GET("/:id", h.Rooms.GetRoom)
		roomRoutes.GET("/:id/quiz", h.Quizzes.GetQuiz)
		roomRoutes.PUT("/:id/quiz", h.Quizzes.SaveQuiz)
		roomRoutes.POST("/:id/applications", h.Quizzes.SubmitApplication)
	}
	sessionRoutes := api.Group("/discovery/sessions")
	{
		sessionRoutes.POST("", h.Discovery.StartSession)
		sessionRoutes.GET("/:id", h.Discovery.GetSession)
		sessionRoutes.DELETE("/:id", h.Discovery.EndSession)
		sessionRoutes.POST("/:id/swipe", h.Discovery.Swipe)
		sessionRoutes.POST("/:id/gesture", h.Discovery.Gesture)
		sessionRoutes.POST("/:id/undo", h.Discovery.Undo)
		sessionRoutes.PUT("/:id/filters", h.Discovery.ChangeFilter)
	}
	chatRoutes := api.Group("/chats")
	{
		chatRoutes.GET("", h.Chats.ListConversations)
		chatRoutes.GET("/:roomId/messages", h.Chats.ListMessages)
		chatRoutes.POST("/:roomId/messages", h.Chats.SendMessage)
	}
	api.GET("/users/:id", h.Users.GetUser)
}
