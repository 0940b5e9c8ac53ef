// Package views renders the task list page and its HTMX fragments.
package views

//go:generate templ generate

import (
	"strconv"

	"todo-app/internal/domain"
)

// HTMXScript is the client library loaded by the full page
const HTMXScript = "https://unpkg.com/htmx.org@1.9.12"

// ListPath serves the page and accepts new tasks
const ListPath = "/"

// ListID is the element id swapped when the list is re-rendered
const ListID = "task-list"

// TaskView is the view model for a single task row
type TaskView struct {
	ID   int64
	Text string
}

// PageData is the view model for the full page
type PageData struct {
	AppName   string
	OwnerName string
	MaxLength int
	Tasks     []TaskView
}

// NewTaskView builds the row view model for a task
func NewTaskView(task domain.Task) TaskView {
	return TaskView{ID: task.ID, Text: task.Text}
}

// NewTaskViews builds row view models preserving order
func NewTaskViews(tasks []domain.Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, NewTaskView(task))
	}
	return views
}

// RowID returns the element id of a task row
func (t TaskView) RowID() string {
	return "task-" + strconv.FormatInt(t.ID, 10)
}

// Target is the hx-target selector of the row
func (t TaskView) Target() string {
	return "#" + t.RowID()
}

func (t TaskView) EditPath() string   { return t.path("/edit/") }
func (t TaskView) UpdatePath() string { return t.path("/update/") }
func (t TaskView) CancelPath() string { return t.path("/cancel/") }
func (t TaskView) DeletePath() string { return t.path("/delete/") }

func (t TaskView) path(prefix string) string {
	return prefix + strconv.FormatInt(t.ID, 10)
}
