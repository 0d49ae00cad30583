package storage

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisGuard struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGuard(client *redis.Client, ttl time.Duration) *RedisGuard {
	return &RedisGuard{Client: client, TTL: ttl}
}

func (g *RedisGuard) MarkerKey(residentID int, startTime time.Time, mealType string) string {
	return "carelog:" + strconv.Itoa(residentID) + ":" +
		strconv.FormatInt(startTime.Unix(), 10) + ":" + strings.ToLower(mealType)
}

func (g *RedisGuard) Claim(ctx context.Context, key string) (bool, error) {
	return g.Client.SetNX(ctx, key, "1", g.TTL).Result()
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.Client.Del(ctx, key).Err()
}
