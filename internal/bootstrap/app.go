package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	httpHandler "github.com/padmeamd/uroom/internal/handler/http"
	wsHandler "github.com/padmeamd/uroom/internal/handler/websocket"
	"github.com/padmeamd/uroom/internal/hub"
	gormpersistence "github.com/padmeamd/uroom/internal/infra/persistence/gorm"
	"github.com/padmeamd/uroom/internal/infra/persistence/memory"
	"github.com/padmeamd/uroom/internal/infra/setup"
	redisstate "github.com/padmeamd/uroom/internal/infra/state/redis"
	"github.com/padmeamd/uroom/internal/middleware"
	"github.com/padmeamd/uroom/internal/repository"
	"github.com/padmeamd/uroom/internal/service"
	"github.com/padmeamd/uroom/internal/worker"
)

// App 结构体包含应用的所有组件和配置
type App struct {
	Config       *Config
	Log          *logrus.Logger
	DB           *gorm.DB      // 内存存储时为 nil
	RedisClient  *redis.Client // 未配置 REDIS_ADDR 时为 nil
	AsynqClient  *asynq.Client
	WorkerServer *worker.WorkerServer
	Hub          *hub.Hub
	Router       *gin.Engine
	HttpServer   *http.Server
}

// repositories 当前存储驱动下的全部仓储
type repositories struct {
	rooms    repository.RoomRepository
	quizzes  repository.QuizRepository
	messages repository.MessageRepository
	users    repository.UserRepository
	joins    repository.JoinRequestRepository
	sessions repository.SessionRepository
}

// NewApp 创建并初始化应用的所有组件
func NewApp(cfg *Config) (*App, error) {
	log := newLogger(cfg)
	log.Info("Configuration loaded successfully")
	app := &App{Config: cfg, Log: log}

	// 1. 存储
	log.WithField("driver", cfg.StorageDriver).Info("Initializing storage...")
	repos, err := app.initStorage(context.Background())
	if err != nil {
		return nil, err
	}

	// 2. Redis 可选：会话存储、限流和异步任务
	var joiner service.JoinRequester = worker.NewInlineEnqueuer(repos.joins)
	if cfg.RedisAddr != "" {
		redisClient, err := setup.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("failed to init Redis: %w", err)
		}
		app.RedisClient = redisClient
		repos.sessions = redisstate.NewRedisSessionRepository(redisClient, cfg.KeyPrefix)

		redisClientOpt := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB}
		app.AsynqClient = asynq.NewClient(redisClientOpt)
		app.WorkerServer = worker.NewWorkerServer(redisClientOpt, repos.joins, log)
		joiner = worker.NewAsynqEnqueuer(app.AsynqClient)
		log.Info("Redis session store and asynq worker enabled")
	} else {
		log.Warn("REDIS_ADDR not set, sessions kept in memory and join requests processed inline")
	}

	// 3. Hub 与 Services
	app.Hub = hub.NewHub()
	roomService := service.NewRoomService(repos.rooms, repos.users)
	discoveryService := service.NewDiscoveryService(repos.rooms, repos.sessions, joiner, app.Hub, service.DiscoveryConfig{
		SessionTTL:     cfg.SessionTTL,
		SwipeThreshold: cfg.SwipeThreshold,
	})
	handlers := httpHandler.Handlers{
		Rooms:     httpHandler.NewRoomHandler(roomService),
		Quizzes:   httpHandler.NewQuizHandler(service.NewQuizService(repos.rooms, repos.quizzes, joiner)),
		Discovery: httpHandler.NewDiscoveryHandler(discoveryService),
		Chats:     httpHandler.NewChatHandler(service.NewChatService(repos.rooms, repos.messages, repos.users, app.Hub)),
		Users:     httpHandler.NewUserHandler(service.NewUserService(repos.users)),
	}
	ws := wsHandler.NewWebSocketHandler(app.Hub, discoveryService, roomService, cfg.CORSAllowedOrigin)
	log.Info("Services and handlers initialized")

	// 4. 路由
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	if app.RedisClient != nil {
		router.Use(middleware.RateLimit(app.RedisClient, cfg.KeyPrefix, cfg.RateLimitMax, cfg.RateLimitWindow))
	}
	httpHandler.RegisterRoutes(router, handlers)
	wsRoutes := router.Group("/ws")
	{
		wsRoutes.GET("/sessions/:id", ws.HandleSession)
		wsRoutes.GET("/chats/:roomId", ws.HandleChat)
	}
	app.Router = router
	app.HttpServer = &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info("Application assembled successfully")
	return app, nil
}

// initStorage 按驱动创建仓储。内存驱动直接载入演示数据，数据库驱动迁移后在空库中写入演示数据。
func (a *App) initStorage(ctx context.Context) (*repositories, error) {
	now := time.Now()
	if a.Config.StorageDriver == setup.DriverMemory {
		return &repositories{
			rooms:    memory.NewRoomRepository(memory.SeedRooms(now)),
			quizzes:  memory.NewQuizRepository(memory.SeedQuizzes()),
			messages: memory.NewMessageRepository(memory.SeedMessages(now)),
			users:    memory.NewUserRepository(memory.SeedUsers(now)),
			joins:    memory.NewJoinRequestRepository(),
			sessions: memory.NewSessionRepository(),
		}, nil
	}

	db, err := setup.InitDB(a.Config.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to init DB: %w", err)
	}
	if err := setup.MigrateDB(db); err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}
	if err := setup.SeedDB(ctx, db, now); err != nil {
		return nil, fmt.Errorf("failed to seed DB: %w", err)
	}
	a.DB = db
	return &repositories{
		rooms:    gormpersistence.NewGormRoomRepository(db),
		quizzes:  gormpersistence.NewGormQuizRepository(db),
		messages: gormpersistence.NewGormMessageRepository(db),
		users:    gormpersistence.NewGormUserRepository(db),
		joins:    gormpersistence.NewGormJoinRequestRepository(db),
		sessions: memory.NewSessionRepository(),
	}, nil
}

func newLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
	level, _ := logrus.ParseLevel(cfg.LogLevel) // LoadConfig 已校验
	log.SetLevel(level)
	log.SetOutput(os.Stdout)
	// services 使用全局 logger，保持同样的格式和级别
	logrus.SetFormatter(log.Formatter)
	logrus.SetLevel(level)
	log.Infof("Logger initialized (Level: %s, Format: %T)", level.String(), log.Formatter)
	return log
}

// Start 启动 Hub、Worker 和 HTTP 服务器
func (a *App) Start() {
	go a.Hub.Run()
	a.Log.Info("Hub routine started")

	if a.WorkerServer != nil {
		go a.WorkerServer.Start()
		a.Log.Info("Asynq worker server routine started")
	}

	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown 优雅地关闭应用
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	// 1. 先停止接收新请求
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	// 2. 关闭所有 WebSocket 订阅
	if a.Hub != nil {
		a.Hub.Stop()
	}

	// 3. 处理完已入队的加入请求
	if a.WorkerServer != nil {
		a.WorkerServer.Shutdown()
	}
	if a.AsynqClient != nil {
		if err := a.AsynqClient.Close(); err != nil {
			a.Log.Errorf("Error closing Asynq client: %v", err)
		}
	}
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		} else {
			a.Log.Info("Redis connection closed.")
		}
	}

	// 4. 关闭数据库连接池
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.Log.Errorf("Error closing database connection: %v", err)
			}
		}
	}
	a.Log.Info("Application shutdown complete.")
}
