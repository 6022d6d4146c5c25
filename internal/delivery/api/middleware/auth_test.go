package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"showcase/internal/domain/entity"
	"showcase/internal/domain/service"
	"showcase/internal/errors"
	mockSvc "showcase/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(m *mockSvc.MockTokenService)
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "missing header",
			header:     "",
			setup:      func(m *mockSvc.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic Zm9vOmJhcg==",
			setup:      func(m *mockSvc.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user", "admin"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			tt.setup(tokenSvc)
			m := NewAuthMiddleware(tokenSvc)

			called := false
			next := func(c echo.Context) error {
				called = true

				id, ok := GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, userID, id)

				return c.NoContent(http.StatusOK)
			}

			c, rec := newAuthContext(tt.header)
			require.NoError(t, m.Authenticate(next)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, called)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	t.Run("role present", func(t *testing.T) {
		c, rec := newAuthContext("")
		c.Set(contextKeyRoles, entity.Roles{entity.RoleUser, entity.RoleAdmin})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("role missing", func(t *testing.T) {
		c, rec := newAuthContext("")
		c.Set(contextKeyRoles, entity.Roles{entity.RoleUser})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"FORBIDDEN"`)
	})

	t.Run("not authenticated", func(t *testing.T) {
		c, rec := newAuthContext("")

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
