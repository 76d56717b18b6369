package bootstrap

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/padmeamd/uroom/internal/discovery"
	"github.com/padmeamd/uroom/internal/infra/setup"
	"github.com/padmeamd/uroom/internal/service"
)

// Config 结构体用于存储从环境变量或文件加载的配置
type Config struct {
	ServerPort        string
	LogLevel          string
	AppEnv            string // development / production
	StorageDriver     string // memory / mysql / postgres
	DB                setup.DBConfig
	RedisAddr         string // 为空时会话存内存，不启用限流和异步任务
	RedisPassword     string
	RedisDB           int
	KeyPrefix         string
	SessionTTL        time.Duration
	SwipeThreshold    float64
	RateLimitMax      int
	RateLimitWindow   time.Duration
	CORSAllowedOrigin string
}

// LoadConfig 从环境变量加载配置，.env 文件存在时优先加载
func LoadConfig() *Config {
	_ = godotenv.Load() // 忽略错误，允许只使用环境变量
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) *Config {
	cfg := &Config{
		ServerPort:        withDefault(getenv("SERVER_PORT"), "8080"),
		LogLevel:          withDefault(getenv("LOG_LEVEL"), "info"),
		AppEnv:            withDefault(getenv("APP_ENV"), "development"),
		StorageDriver:     strings.ToLower(withDefault(getenv("STORAGE_DRIVER"), setup.DriverMemory)),
		RedisAddr:         getenv("REDIS_ADDR"),
		RedisPassword:     getenv("REDIS_PASSWORD"),
		KeyPrefix:         withDefault(getenv("REDIS_KEY_PREFIX"), "uroom:"),
		RateLimitWindow:   time.Second,
		CORSAllowedOrigin: getenv("CORS_ALLOWED_ORIGIN"),
		DB: setup.DBConfig{
			User:     getenv("DB_USER"),
			Password: getenv("DB_PASSWORD"),
			Host:     getenv("DB_HOST"),
			Port:     getenv("DB_PORT"),
			Name:     getenv("DB_NAME"),
		},
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}
	switch cfg.StorageDriver {
	case setup.DriverMemory, setup.DriverMySQL, setup.DriverPostgres:
	default:
		logrus.Warnf("Invalid STORAGE_DRIVER '%s', using default '%s'", cfg.StorageDriver, setup.DriverMemory)
		cfg.StorageDriver = setup.DriverMemory
	}
	cfg.DB.Driver = cfg.StorageDriver

	cfg.RedisDB = intFromEnv(getenv, "REDIS_DB", 0, 0)
	cfg.SessionTTL = time.Duration(intFromEnv(getenv, "SESSION_TTL_MINUTES", int(service.DefaultSessionTTL/time.Minute), 1)) * time.Minute
	cfg.RateLimitMax = intFromEnv(getenv, "RATE_LIMIT_MAX", 100, 1)

	cfg.SwipeThreshold = discovery.DefaultSwipeThreshold
	if raw := getenv("SWIPE_THRESHOLD"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			logrus.Warnf("Invalid SWIPE_THRESHOLD '%s', using default %.0f", raw, discovery.DefaultSwipeThreshold)
		} else {
			cfg.SwipeThreshold = v
		}
	}
	return cfg
}

// intFromEnv 解析整数配置，缺失或小于 minVal 时使用默认值
func intFromEnv(getenv func(string) string, key string, def, minVal int) int {
	raw := getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < minVal {
		logrus.Warnf("Invalid %s '%s', using default %d", key, raw, def)
		return def
	}
	return v
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
