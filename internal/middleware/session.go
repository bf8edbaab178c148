package middleware

import (
	stderrors "errors"

	"dipadubank/internal/errors"
	"dipadubank/internal/handlers"
	"dipadubank/internal/models"
	"dipadubank/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	SessionCookieName = handlers.SessionCookieName
	// IdentityContextKey is the echo context key holding the resolved models.Identity
	IdentityContextKey = "identity"
)

// RequireSession resolves the caller identity from a bearer token or the session cookie.
// The identity is stored on the echo context and on the request context.
func RequireSession(sessionService services.SessionServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := sessionToken(c, sessionService)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}
			if token == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			claims, err := sessionService.ParseToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			identity := claims.Identity()
			if identity.RoqUserID == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Session carries no user"))
			}

			c.Set(IdentityContextKey, identity)
			req := c.Request()
			c.SetRequest(req.WithContext(models.WithIdentity(req.Context(), identity)))

			return next(c)
		}
	}
}

func sessionToken(c echo.Context, sessionService services.SessionServiceInterface) (string, error) {
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		return sessionService.ExtractTokenFromHeader(authHeader)
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie.Value, nil
	}
	return "", nil
}
