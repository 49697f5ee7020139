package handler

import "github.com/tasknest/todo-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the standard success envelope: a human-readable message
// plus an optional payload.
type messageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Auth ---

type registerRequest struct {
	Name            string `json:"name"             validate:"required"`
	Email           string `json:"email"            validate:"required,email"`
	Username        string `json:"username"         validate:"required,min=3,max=30"`
	Password        string `json:"password"         validate:"required,min=3,max=30"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type loginRequest struct {
	// LoginID is either the username or the email address.
	LoginID  string `json:"login_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type dashboardResponse struct {
	User *domain.UserSnapshot `json:"user"`
}

// --- Todos ---

type createTodoRequest struct {
	Todo string `json:"todo" validate:"required"`
}

type editTodoRequest struct {
	Todo string `json:"todo" validate:"required"`
}

type createTodoResponse struct {
	ID string `json:"id"`
}
