package mediaapp

import (
	"time"

	redisadapter "photofeed/internal/adapters/redis"

	"github.com/go-redis/redis/v8"
)

func redisCache(client *redis.Client) *redisadapter.SerializedCacheRedis {
	return redisadapter.NewSerializedCacheRedis(client, time.Minute)
}
