package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"showcase/internal/delivery/api/response"
	deliverycontext "showcase/internal/delivery/context"
	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	"showcase/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
)

// AuthMiddleware validates bearer access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token and stores the
// caller's id and roles on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return unauthorized(c, "Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))

		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", claims.UserID.String())))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get(contextKeyRoles).(entity.Roles)
			if !slices.Contains(roles, required) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: require '"+required.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user id set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	if id, ok := c.Get(contextKeyUserID).(uuid.UUID); ok && id != uuid.Nil {
		return id, true
	}

	return deliverycontext.GetUserIDFromContext(c.Request().Context())
}

func unauthorized(c echo.Context, message string) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), message)
}
