package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"todo-tracker/internal/todo"
	repo "todo-tracker/internal/todo/repository"
)

// CreateTodo stores a new Todo with a fresh UUID.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (todo.Todo, error) {
	now := r.now()
	t := todo.Todo{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     cloneTime(opt.DueDate),
		Priority:    opt.Priority,
		Tags:        opt.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.records[t.ID] = record{todo: t, seq: r.seq}

	return clone(t), nil
}

// GetOneTodo returns the zero Todo (ID == "") when not found.
func (r *implRepository) GetOneTodo(ctx context.Context, opt repo.GetOneTodoOptions) (todo.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[opt.ID]
	if !ok || rec.todo.UserID != opt.UserID {
		return todo.Todo{}, nil
	}
	return clone(rec.todo), nil
}

// ListTodos returns the matching page, newest first, and the total match count.
func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]todo.Todo, int, error) {
	r.mu.RLock()
	matched := make([]record, 0, len(r.records))
	for _, rec := range r.records {
		if matches(rec.todo, opt) {
			matched = append(matched, rec)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.todo.CreatedAt.Equal(b.todo.CreatedAt) {
			return a.todo.CreatedAt.After(b.todo.CreatedAt)
		}
		return a.seq > b.seq
	})

	total := len(matched)
	start := min(max(opt.Offset, 0), total)
	end := total
	if opt.Limit > 0 {
		end = min(start+opt.Limit, total)
	}

	todos := make([]todo.Todo, 0, end-start)
	for _, rec := range matched[start:end] {
		todos = append(todos, clone(rec.todo))
	}
	return todos, total, nil
}

// UpdateTodo replaces the mutable fields of a Todo. Returns the zero Todo
// when not found.
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (todo.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[opt.ID]
	if !ok || rec.todo.UserID != opt.UserID {
		return todo.Todo{}, nil
	}

	t := rec.todo
	t.Title = opt.Title
	t.Description = opt.Description
	t.Completed = opt.Completed
	t.DueDate = cloneTime(opt.DueDate)
	t.Priority = opt.Priority
	t.Tags = opt.Tags
	t.UpdatedAt = r.now()

	r.records[t.ID] = record{todo: t, seq: rec.seq}
	return clone(t), nil
}

// DeleteTodo removes a Todo. Deleting a missing Todo is a no-op.
func (r *implRepository) DeleteTodo(ctx context.Context, opt repo.DeleteTodoOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec, ok := r.records[opt.ID]; ok && rec.todo.UserID == opt.UserID {
		delete(r.records, opt.ID)
	}
	return nil
}

func matches(t todo.Todo, opt repo.ListTodosOptions) bool {
	if t.UserID != opt.UserID {
		return false
	}
	if opt.Search != "" {
		q := strings.ToLower(opt.Search)
		if !strings.Contains(strings.ToLower(t.Title), q) && !strings.Contains(strings.ToLower(t.Description), q) {
			return false
		}
	}
	if opt.Completed != nil && t.Completed != *opt.Completed {
		return false
	}
	if opt.Tag != "" && !strings.Contains(strings.ToLower(t.Tags), strings.ToLower(opt.Tag)) {
		return false
	}
	if opt.Priority != "" && t.Priority != opt.Priority {
		return false
	}
	return true
}

// clone detaches the DueDate pointer so callers cannot mutate stored state.
func clone(t todo.Todo) todo.Todo {
	t.DueDate = cloneTime(t.DueDate)
	return t
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
