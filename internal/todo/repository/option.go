package repository

import (
	"time"

	"todo-tracker/internal/model"
)

// CreateTodoOptions holds parameters for inserting a new Todo.
type CreateTodoOptions struct {
	UserID      string
	Title       string
	Description string
	DueDate     *time.Time
	Priority    model.Priority
	Tags        string
}

// GetOneTodoOptions identifies a single Todo.
type GetOneTodoOptions struct {
	ID     string
	UserID string
}

// ListTodosOptions holds filter and pagination parameters for listing Todos.
// Empty / nil filters are not applied.
type ListTodosOptions struct {
	UserID    string
	Search    string // case-insensitive substring of title or description
	Completed *bool
	Tag       string // case-insensitive substring of tags
	Priority  model.Priority
	Limit     int // <= 0 → no limit
	Offset    int
}

// UpdateTodoOptions holds the full new state of an existing Todo.
type UpdateTodoOptions struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Completed   bool
	DueDate     *time.Time
	Priority    model.Priority
	Tags        string
}

// DeleteTodoOptions identifies the Todo to remove.
type DeleteTodoOptions struct {
	ID     string
	UserID string
}
