package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	newCtx := func(ctx context.Context) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

		return echo.New().NewContext(req, httptest.NewRecorder())
	}

	t.Run("echo store wins", func(t *testing.T) {
		c := newCtx(WithRequestID(context.Background(), "from-ctx"))
		SetRequestID(c, "from-echo")

		assert.Equal(t, "from-echo", GetRequestID(c))
	})

	t.Run("falls back to request context", func(t *testing.T) {
		c := newCtx(WithRequestID(context.Background(), "from-ctx"))

		assert.Equal(t, "from-ctx", GetRequestID(c))
	})

	t.Run("generates when absent", func(t *testing.T) {
		id := GetRequestID(newCtx(context.Background()))

		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})
}

func TestUserID(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetUserIDFromContext(WithUserID(context.Background(), uuid.Nil))
	assert.False(t, ok)

	id := uuid.New()
	got, ok := GetUserIDFromContext(WithUserID(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.Default().With(slog.String("request_id", "r1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
