package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	mockUC "showcase/internal/mocks/usecase"
	"showcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		h := NewUserHandler(UserHandlerParams{UserUC: uc, Logger: slog.Default()})

		user := &entity.User{ID: uuid.New(), Name: "Admin", Email: "admin@example.com", IsAdmin: true}
		uc.EXPECT().Login(mock.Anything, "admin@example.com", "secret-pass").
			Return(&usecase.LoginOutput{User: user, AccessToken: "token"}, nil)

		body := `{"email":"admin@example.com","password":"secret-pass"}`
		c, rec := newTestContext(http.MethodPost, "/", strings.NewReader(body), "application/json")

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"accessToken":"token"`)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		h := NewUserHandler(UserHandlerParams{UserUC: uc, Logger: slog.Default()})

		uc.EXPECT().Login(mock.Anything, "admin@example.com", "nope").Return(nil, domainerrors.ErrInvalidCredentials)

		body := `{"email":"admin@example.com","password":"nope"}`
		c, rec := newTestContext(http.MethodPost, "/", strings.NewReader(body), "application/json")

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestUserHandler_Profile(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		h := NewUserHandler(UserHandlerParams{UserUC: uc, Logger: slog.Default()})

		id := uuid.New()
		uc.EXPECT().Profile(mock.Anything, id).Return(&entity.User{ID: id, Email: "admin@example.com"}, nil)

		c, rec := newTestContext(http.MethodGet, "/", nil, "")
		c.Set("userID", id)

		require.NoError(t, h.Profile(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		h := NewUserHandler(UserHandlerParams{UserUC: uc, Logger: slog.Default()})

		c, rec := newTestContext(http.MethodGet, "/", nil, "")

		require.NoError(t, h.Profile(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserHandler_Create_ShortPassword(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: uc, Logger: slog.Default()})

	body := `{"name":"Ops","email":"ops@example.com","password":"short"}`
	c, rec := newTestContext(http.MethodPost, "/", strings.NewReader(body), "application/json")

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"password": "min"}, decodeEnvelope(t, rec).Error.Details)
}
