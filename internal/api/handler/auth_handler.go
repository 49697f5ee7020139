package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tasknest/todo-system/internal/api/metrics"
	"github.com/tasknest/todo-system/internal/core/domain"
	"github.com/tasknest/todo-system/internal/core/ports"
)

// AuthHandler handles registration and login. Login is the only place a
// session gets bound: the authenticator verifies credentials and the session
// service attaches the resulting snapshot to a fresh session record.
type AuthHandler struct {
	auth       ports.AuthService
	sessions   ports.SessionService
	cookieName string
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionService, cookieName string) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cookieName: cookieName}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("validation").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerResult(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "user registered", Data: user})
}

// Login authenticates by username or email and binds a new session. The
// opaque session identifier travels back to the client as an HttpOnly cookie.
//
// @Summary      Login with username or email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("validation").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	snapshot, err := h.auth.Authenticate(c.Request().Context(), req.LoginID, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	sessionID, err := h.sessions.Bind(c.Request().Context(), *snapshot)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "login successful", Data: snapshot})
}

// LoginPrompt is the login entry point unauthenticated requests are
// redirected to.
//
// @Summary      Login entry point
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /login [get]
func (h *AuthHandler) LoginPrompt(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "please login via POST /login"})
}

// clearSessionCookie expires the session cookie on the client.
func clearSessionCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	default:
		return "error"
	}
}

func registerResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return "duplicate"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	default:
		return "error"
	}
}
