package web

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"todo-app/internal/config"
	"todo-app/internal/domain"
	"todo-app/internal/errors"
	"todo-app/internal/logging"
	"todo-app/internal/services"
	"todo-app/internal/views"
)

// taskForm is the form submitted when creating or updating a task
type taskForm struct {
	Task string `form:"task"`
}

// TaskHandler serves the task pages and fragments
type TaskHandler struct {
	tasks services.TaskService
	view  config.ViewConfig
	limit int
}

// NewTaskHandler creates a handler backed by the given service
func NewTaskHandler(tasks services.TaskService, cfg *config.Config) *TaskHandler {
	return &TaskHandler{
		tasks: tasks,
		view:  cfg.View,
		limit: cfg.Validation.TaskMaxLength,
	}
}

// Index renders the full page with every task
func (h *TaskHandler) Index(c *gin.Context) {
	tasks, err := h.tasks.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	render(c, http.StatusOK, views.Page(views.PageData{
		AppName:   h.view.AppName,
		OwnerName: h.view.OwnerName,
		MaxLength: h.limit,
		Tasks:     views.NewTaskViews(tasks),
	}))
}

// Create adds a task. HTMX requests get the refreshed list, others are
// redirected back to the page.
func (h *TaskHandler) Create(c *gin.Context) {
	var form taskForm
	if err := c.ShouldBind(&form); err != nil {
		h.fail(c, errors.NewValidationError("invalid form", err))
		return
	}

	ctx := c.Request.Context()
	if _, err := h.tasks.Create(ctx, form.Task); err != nil {
		h.fail(c, err)
		return
	}

	if !IsHTMXRequest(c.Request) {
		c.Redirect(http.StatusFound, views.ListPath)
		return
	}

	tasks, err := h.tasks.ListAll(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	render(c, http.StatusOK, views.TaskList(views.NewTaskViews(tasks)))
}

// Edit renders the inline edit form for a task
func (h *TaskHandler) Edit(c *gin.Context) {
	task, ok := h.lookup(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, views.EditTaskItem(views.NewTaskView(*task)))
}

// Update saves new text for a task and renders its row
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	var form taskForm
	if err := c.ShouldBind(&form); err != nil {
		h.fail(c, errors.NewValidationError("invalid form", err))
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), id, form.Task)
	if err != nil {
		h.fail(c, err)
		return
	}
	render(c, http.StatusOK, views.TaskItem(views.NewTaskView(*task)))
}

// Cancel discards an edit by rendering the read-only row
func (h *TaskHandler) Cancel(c *gin.Context) {
	task, ok := h.lookup(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, views.TaskItem(views.NewTaskView(*task)))
}

// Delete removes a task and answers with an empty body
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// taskID parses the id path parameter. Ids that are not integers cannot
// name a task and are answered with 404.
func (h *TaskHandler) taskID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.fail(c, errors.NewNotFoundError("task", raw))
		return 0, false
	}
	return id, true
}

func (h *TaskHandler) lookup(c *gin.Context) (*domain.Task, bool) {
	id, ok := h.taskID(c)
	if !ok {
		return nil, false
	}
	task, err := h.tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return task, true
}

// fail writes err as a plain text response with the mapped status code
func (h *TaskHandler) fail(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if errors.ShouldLogError(err) {
		logging.FromContext(c.Request.Context()).Error("request failed",
			"status", status,
			"code", errors.GetErrorCode(err),
			"error", err,
		)
	}
	_ = c.Error(err)
	c.String(status, errors.GetUserMessage(err))
}

func render(c *gin.Context, status int, component templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		logging.FromContext(c.Request.Context()).Error("render failed", "error", err)
		_ = c.Error(err)
	}
}
