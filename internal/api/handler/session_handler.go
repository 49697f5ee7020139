package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tasknest/todo-system/internal/api/metrics"
	"github.com/tasknest/todo-system/internal/core/ports"
)

// SessionHandler serves the routes behind the authorization gate that act on
// the session itself: dashboard, logout, and logout from all devices.
type SessionHandler struct {
	sessions   ports.SessionService
	cookieName string
}

func NewSessionHandler(sessions ports.SessionService, cookieName string) *SessionHandler {
	return &SessionHandler{sessions: sessions, cookieName: cookieName}
}

// Dashboard echoes the authenticated user's snapshot.
//
// @Summary      Current session's user
// @Tags         session
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Router       /dashboard [get]
func (h *SessionHandler) Dashboard(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{User: user})
}

// Logout destroys exactly the current session.
//
// @Summary      Logout from this device
// @Tags         session
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessions.Unbind(c.Request().Context(), ctxSessionID(c)); err != nil {
		return err
	}

	clearSessionCookie(c, h.cookieName)
	metrics.SessionsDestroyedTotal.WithLabelValues("single").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// LogoutAll destroys every session bound to the acting user, including the
// current one. Sessions of other users are untouched.
//
// @Summary      Logout from all devices
// @Tags         session
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /logout-all [post]
func (h *SessionHandler) LogoutAll(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	n, err := h.sessions.UnbindAll(c.Request().Context(), user.Username)
	if err != nil {
		return err
	}

	clearSessionCookie(c, h.cookieName)
	metrics.SessionsDestroyedTotal.WithLabelValues("all_devices").Add(float64(n))
	return c.JSON(http.StatusOK, messageResponse{
		Message: "logged out from all devices",
		Data:    map[string]int64{"sessions_destroyed": n},
	})
}
