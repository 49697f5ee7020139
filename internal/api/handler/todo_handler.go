package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tasknest/todo-system/internal/api/metrics"
	"github.com/tasknest/todo-system/internal/core/domain"
	"github.com/tasknest/todo-system/internal/core/ports"
)

// TodoHandler handles HTTP requests for todo operations. Every route here
// sits behind the session gate; the mutating ones additionally pass the rate
// limiter before reaching these methods.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// Create handles POST /v1/todos.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      createTodoRequest  true  "Todo text"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), user.Username, req.Todo)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("create", mutationResult(err)).Inc()
		return err
	}

	metrics.MutationsTotal.WithLabelValues("create", "success").Inc()
	return c.JSON(http.StatusCreated, messageResponse{
		Message: "todo created",
		Data:    createTodoResponse{ID: id},
	})
}

// Update handles PUT /v1/todos/:id.
//
// @Summary      Edit a todo's text
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Todo id"
// @Param        body  body      editTodoRequest  true  "New text"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/todos/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req editTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Edit(c.Request().Context(), user.Username, c.Param("id"), req.Todo); err != nil {
		metrics.MutationsTotal.WithLabelValues("edit", mutationResult(err)).Inc()
		return err
	}

	metrics.MutationsTotal.WithLabelValues("edit", "success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "todo updated"})
}

// Delete handles DELETE /v1/todos/:id.
//
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Param        id  path      string  true  "Todo id"
// @Success      200 {object}  messageResponse
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Failure      429 {object}  errorResponse
// @Router       /v1/todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.Username, c.Param("id")); err != nil {
		metrics.MutationsTotal.WithLabelValues("delete", mutationResult(err)).Inc()
		return err
	}

	metrics.MutationsTotal.WithLabelValues("delete", "success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "todo deleted"})
}

// List handles GET /v1/todos?skip=&limit= — the paginated listing of the
// acting user's items. Absent, malformed or negative skip is treated as 0;
// limit defaults to the service page size and is clamped there.
//
// @Summary      List the user's todos, paginated
// @Tags         todos
// @Produce      json
// @Param        skip   query     int  false  "Items to skip"
// @Param        limit  query     int  false  "Page size (default 5)"
// @Success      200    {object}  messageResponse
// @Failure      401    {object}  errorResponse
// @Router       /v1/todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	page := ports.PageInput{
		Skip:  parseQueryInt(c.QueryParam("skip"), 0),
		Limit: parseQueryInt(c.QueryParam("limit"), 0),
	}

	todos, err := h.service.ListPage(c.Request().Context(), user.Username, page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "read successful", Data: todos})
}

// parseQueryInt parses a numeric query parameter with an explicit default:
// absent, malformed and negative values all collapse to fallback.
func parseQueryInt(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func mutationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrTodoNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}
