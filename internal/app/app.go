package app

import (
	"os"
	"strconv"
	"time"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr  string
	KafkaAddr  string
	ServerPort string
}

func LoadConfig() Config {
	return Config{
		DBHost:     envOr("DB_HOST", "localhost"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envOr("DB_NAME", "payroll"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBSSLMode:  envOr("DB_SSLMODE", "disable"),
		RedisAddr:  envOr("REDIS_ADDR", "localhost:6379"),
		KafkaAddr:  envOr("KAFKA_ADDR", "localhost:9092"),
		ServerPort: envOr("SERVER_PORT", "8080"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// App holds the shared infrastructure handles every entrypoint needs.
type App struct {
	Config Config
	DB     *gorm.DB
	Redis  *redis.Client
	Logger *zap.Logger
}

func BuildApp(logger *zap.Logger) (*App, error) {
	cfg := LoadConfig()

	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
		envIntOr("DB_CONNECT_RETRIES", 5),
	)
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, envIntOr("REDIS_CONNECT_RETRIES", 5))
	if err != nil {
		return nil, err
	}

	return &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		Logger: logger,
	}, nil
}

func (a *App) ServerConfig() bootstrap.ServerConfig {
	return bootstrap.ServerConfig{
		Port:         a.Config.ServerPort,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
