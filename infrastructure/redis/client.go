package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"todo-backend/domain/models"
	"todo-backend/pkg/config"
	"todo-backend/pkg/logger"
)

const (
	tokenKeyPrefix = "auth:token:"
	tokenTTL       = 5 * time.Minute
)

// TokenCache caches access-token resolution in Redis. Every failure is
// treated as a miss so a flaky or absent Redis never breaks auth.
type TokenCache struct {
	rdb *redis.Client
}

func NewTokenCache(cfg *config.RedisConfig) (*TokenCache, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	if cfg.DB > 0 {
		opt.DB = cfg.DB
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("Redis connected", "url", cfg.URL)

	return &TokenCache{rdb: rdb}, nil
}

func (c *TokenCache) GetUser(ctx context.Context, accessID string) (*models.User, bool) {
	raw, err := c.rdb.Get(ctx, tokenKeyPrefix+accessID).Result()
	if err != nil {
		return nil, false
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	return &user, true
}

func (c *TokenCache) SetUser(ctx context.Context, accessID string, user *models.User) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, tokenKeyPrefix+accessID, data, tokenTTL).Err(); err != nil {
		logger.WarnContext(ctx, "Token cache set failed", "error", err)
	}
}

func (c *TokenCache) Invalidate(ctx context.Context, accessID string) {
	if err := c.rdb.Del(ctx, tokenKeyPrefix+accessID).Err(); err != nil {
		logger.WarnContext(ctx, "Token cache invalidation failed", "error", err)
	}
}

func (c *TokenCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *TokenCache) Close() error {
	return c.rdb.Close()
}
