package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tasknest/todo-system/internal/api/metrics"
	"github.com/tasknest/todo-system/internal/core/domain"
	"github.com/tasknest/todo-system/internal/core/ports"
)

// RateLimit gates mutation routes with the per-user limiter. It must be
// registered after Session so the acting username is available as the
// limiter key; rejection happens strictly before the handler runs.
func RateLimit(limiter ports.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get("user").(*domain.UserSnapshot)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
			}

			if err := limiter.Admit(c.Request().Context(), user.Username); err != nil {
				if errors.Is(err, domain.ErrRateLimited) {
					metrics.RateLimitedTotal.WithLabelValues(c.Path()).Inc()
				}
				return err
			}

			return next(c)
		}
	}
}
