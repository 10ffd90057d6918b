package todo

import (
	"time"

	"todo-tracker/internal/model"
	"todo-tracker/internal/naturallanguage"
)

// --- Todo Domain Model ---

// Todo is a single task owned by one user.
type Todo struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Completed   bool
	DueDate     *time.Time
	Priority    model.Priority
	Tags        string // comma-separated, "" when untagged
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    *model.Priority // nil → model.DefaultPriority
	Tags        *string
}

type CreateFromTextInput struct {
	Text string
}

type ParseInput struct {
	Text string
}

type ListInput struct {
	Search    string
	Completed *bool
	Tag       string
	Priority  model.Priority // "" → any
	Limit     int
	Offset    int
}

// UpdateInput is a partial update: nil fields keep their current value.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Completed   *bool
	DueDate     *time.Time
	Priority    *model.Priority
	Tags        *string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Todo Todo
}

type CreateFromTextOutput struct {
	Todo       Todo
	Extraction naturallanguage.Result
}

type ParseOutput struct {
	Extraction naturallanguage.Result
}

type ListOutput struct {
	Todos  []Todo
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Todo Todo
}

type UpdateOutput struct {
	Todo Todo
}
