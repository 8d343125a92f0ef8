package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridepay/internal/pkg/jwt"
	"github.com/piresc/ridepay/internal/pkg/logger"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/internal/utils"
)

// ActorID returns the authenticated actor id set by JWTAuthMiddleware
func ActorID(c echo.Context) string {
	id, _ := c.Get(logger.ActorKey).(string)
	return id
}

// JWTAuthMiddleware verifies an HS256 bearer token and stores its subject as
// the actor id.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwt.ValidateToken(config, parts[1])
			if err != nil {
				logger.DebugCtx(c.Request().Context(), "Rejected bearer token", logger.Err(err))
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(logger.ActorKey, claims.Subject)
			AddAttribute(c, "actor.id", claims.Subject)
			return next(c)
		}
	}
}
