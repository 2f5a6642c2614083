package config

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient stays nil when REDIS_ADDR is empty
var RedisClient *redis.Client

func NewRedisClient(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// InitRedis connects config.RedisClient when a redis address is configured
func InitRedis() {
	if Cfg.RedisAddr == "" {
		Logger.Info("REDIS_ADDR not set, serialized cache disabled")
		return
	}

	RedisClient = NewRedisClient(Cfg)

	s, err := RedisClient.Ping(context.Background()).Result()
	if err != nil {
		Logger.Fatal("Error connecting to Redis:", zap.Error(err))
	}
	Logger.Info("✅ Connected to Redis", zap.String("addr", Cfg.RedisAddr), zap.String("ping", s))
}
