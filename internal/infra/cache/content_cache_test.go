package cache

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"showcase/config"
	"showcase/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testRedisClient skips when no Redis is reachable.
func testRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: redis not reachable: %v", err)
	}

	t.Cleanup(func() {
		ctx := context.Background()
		keys, _ := client.Keys(ctx, contentKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func TestContentKey(t *testing.T) {
	assert.Equal(t, "content:home:AR", ContentKey(entity.ContentTypeHome, entity.LanguageAR))
}

func TestNew_DisabledWithoutAddress(t *testing.T) {
	c, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    discardLogger(),
	})
	require.NoError(t, err)

	lang := entity.LanguageEN
	c.Set(context.Background(), &entity.Content{Type: entity.ContentTypeHome, Language: &lang})
	_, ok := c.Get(context.Background(), entity.ContentTypeHome, entity.LanguageEN)
	assert.False(t, ok)
}

func TestRedisContentCache_SetGetInvalidate(t *testing.T) {
	client := testRedisClient(t)
	c := NewRedisContentCache(client, time.Minute, discardLogger())
	ctx := context.Background()

	_, ok := c.Get(ctx, entity.ContentTypeAbout, entity.LanguageEN)
	assert.False(t, ok)

	lang := entity.LanguageEN
	content := &entity.Content{
		ID:       uuid.New(),
		Type:     entity.ContentTypeAbout,
		Language: &lang,
		Data:     map[string]any{"title": "About"},
	}
	c.Set(ctx, content)

	got, ok := c.Get(ctx, entity.ContentTypeAbout, entity.LanguageEN)
	require.True(t, ok)
	assert.Equal(t, content.ID, got.ID)
	assert.Equal(t, "About", got.Data["title"])

	c.Invalidate(ctx, entity.ContentTypeAbout, entity.LanguageEN)
	_, ok = c.Get(ctx, entity.ContentTypeAbout, entity.LanguageEN)
	assert.False(t, ok)
}

func TestRedisContentCache_SkipsLegacyRecords(t *testing.T) {
	client := testRedisClient(t)
	c := NewRedisContentCache(client, time.Minute, discardLogger())

	c.Set(context.Background(), &entity.Content{Type: entity.ContentTypeHome})

	n, err := client.Exists(context.Background(), ContentKey(entity.ContentTypeHome, "")).Result()
	require.NoError(t, err)
	assert.Zero(t, n)
}
