package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tasknest/todo-system/internal/core/domain"
)

// loginPath is where unauthenticated requests are sent. The redirect is a
// control-flow terminus, not an error returned to downstream handlers.
const loginPath = "/login"

// SessionResolver is the part of the session service the gate needs.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*domain.UserSnapshot, error)
}

// Session is the authorization gate every protected route passes through.
// It resolves the session cookie into a user snapshot and injects it into
// the request context. Requests without an authenticated session are
// redirected to the login entry point before any handler runs.
func Session(resolver SessionResolver, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, loginPath)
			}

			snapshot, err := resolver.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					return c.Redirect(http.StatusFound, loginPath)
				}
				return err
			}

			c.Set("session_id", cookie.Value)
			c.Set("user", snapshot)

			return next(c)
		}
	}
}
