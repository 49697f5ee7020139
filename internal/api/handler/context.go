package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tasknest/todo-system/internal/core/domain"
)

// ctxUser extracts the snapshot injected by the Session middleware and
// performs a fast-fail check before any service call: a present, non-empty
// username proves the gate ran. A protected handler reached without it is a
// wiring error, rejected with 401 rather than served anonymously.
func ctxUser(c echo.Context) (*domain.UserSnapshot, error) {
	user, _ := c.Get("user").(*domain.UserSnapshot)
	if user == nil || user.Username == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return user, nil
}

// ctxSessionID extracts the opaque session identifier set by the gate.
func ctxSessionID(c echo.Context) string {
	id, _ := c.Get("session_id").(string)
	return id
}
