package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Server   ServerConfig   `validate:"required"`
	Database DatabaseConfig `validate:"required"`
	Redis    RedisConfig    `validate:"required"`
	Lock     LockConfig     `validate:"required"`
	Queue    QueueConfig    `validate:"required"`
	LogLevel string         `validate:"required,oneof=debug info warn error"`
}

type ServerConfig struct {
	Port               string `validate:"required,numeric"`
	CORSAllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	User     string `validate:"required"`
	Password string
	DBName   string `validate:"required"`
	SSLMode  string `validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
}

type RedisConfig struct {
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	Password string
	DB       int `validate:"min=0"`
}

// LockConfig 建立關聯時複合鍵鎖的存活時間
type LockConfig struct {
	TTL time.Duration `validate:"required"`
}

type QueueConfig struct {
	Driver     string `validate:"required,oneof=memory redis"`
	BufferSize int    `validate:"min=1"`
	ConsumerID string
}

var AppConfig *Config

func LoadConfig() (*Config, error) {
	redisConfig, err := GetRedisConfig()
	if err != nil {
		return nil, err
	}
	lockConfig, err := GetLockConfig()
	if err != nil {
		return nil, err
	}
	queueConfig, err := GetQueueConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    redisConfig,
		Lock:     lockConfig,
		Queue:    queueConfig,
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	AppConfig = cfg
	return AppConfig, nil
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server:   ServerConfig{Port: "8081"},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Lock:     LockConfig{TTL: time.Second},
		Queue:    QueueConfig{Driver: "memory", BufferSize: 100},
		LogLevel: "debug",
	}
}

func GetServerConfig() ServerConfig {
	var origins []string
	for _, o := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return ServerConfig{
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: origins,
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() (RedisConfig, error) {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return RedisConfig{}, fmt.Errorf("REDIS_DB: %w", err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}, nil
}

func GetLockConfig() (LockConfig, error) {
	ttl, err := time.ParseDuration(getEnv("EVENT_ROOM_LOCK_TTL", "5s"))
	if err != nil {
		return LockConfig{}, fmt.Errorf("EVENT_ROOM_LOCK_TTL: %w", err)
	}
	return LockConfig{TTL: ttl}, nil
}

func GetQueueConfig() (QueueConfig, error) {
	size, err := strconv.Atoi(getEnv("QUEUE_BUFFER_SIZE", "1000"))
	if err != nil {
		return QueueConfig{}, fmt.Errorf("QUEUE_BUFFER_SIZE: %w", err)
	}
	return QueueConfig{
		Driver:     getEnv("QUEUE_DRIVER", "redis"),
		BufferSize: size,
		ConsumerID: getEnv("QUEUE_CONSUMER_ID", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
