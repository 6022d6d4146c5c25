// Package cache keeps resolved content blocks in Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"showcase/config"
	"showcase/internal/domain/entity"
	"showcase/internal/domain/lifecycle"
	"showcase/internal/domain/service"
	"showcase/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	contentKeyPrefix = "content:"

	// DefaultContentTTL bounds staleness when another instance updates a block.
	DefaultContentTTL = 10 * time.Minute
)

// Params defines the dependencies of the content cache
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis-backed cache when cache.address is set and a no-op cache otherwise.
func New(params Params) (service.ContentCache, error) {
	cfg := params.Config.Cache
	if cfg == nil || cfg.Address == "" {
		params.Logger.Info("Content cache disabled")

		return noopCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "redis ping")
			}
			params.Logger.Info("Content cache connected", slog.String("addr", cfg.Address))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisContentCache(client, cfg.TTL, params.Logger), nil
}

type redisContentCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisContentCache stores content blocks as JSON under content:{type}:{language}.
func NewRedisContentCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.ContentCache {
	if ttl <= 0 {
		ttl = DefaultContentTTL
	}

	return &redisContentCache{client: client, ttl: ttl, logger: logger}
}

// ContentKey returns the cache key of a content block.
func ContentKey(contentType entity.ContentType, language entity.Language) string {
	return contentKeyPrefix + string(contentType) + ":" + string(language)
}

func (c *redisContentCache) Get(ctx context.Context, contentType entity.ContentType, language entity.Language) (*entity.Content, bool) {
	key := ContentKey(contentType, language)

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("content cache get error", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	var content entity.Content
	if err := json.Unmarshal(raw, &content); err != nil {
		c.logger.Warn("content cache decode error", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	return &content, true
}

func (c *redisContentCache) Set(ctx context.Context, content *entity.Content) {
	if content == nil || content.Language == nil {
		return
	}

	key := ContentKey(content.Type, *content.Language)

	raw, err := json.Marshal(content)
	if err != nil {
		c.logger.Warn("content cache encode error", slog.String("key", key), slog.Any("error", err))

		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("content cache set error", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *redisContentCache) Invalidate(ctx context.Context, contentType entity.ContentType, language entity.Language) {
	key := ContentKey(contentType, language)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("content cache invalidate error", slog.String("key", key), slog.Any("error", err))
	}
}

type noopCache struct{}

func (noopCache) Get(context.Context, entity.ContentType, entity.Language) (*entity.Content, bool) {
	return nil, false
}

func (noopCache) Set(context.Context, *entity.Content) {}

func (noopCache) Invalidate(context.Context, entity.ContentType, entity.Language) {}
