package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"todo-tracker/internal/model"
	"todo-tracker/internal/todo"
	repo "todo-tracker/internal/todo/repository"
)

const selectColumns = `id, user_id, title, description, completed, due_date, priority, tags, created_at, updated_at`

// CreateTodo inserts a new Todo row and returns the created entity.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (todo.Todo, error) {
	now := r.now().UTC()
	t := todo.Todo{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Priority:    opt.Priority,
		Tags:        opt.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	const query = `
		INSERT INTO todos (id, user_id, title, description, completed, due_date, priority, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Description, formatNullTime(t.DueDate),
		string(t.Priority), t.Tags, formatTime(now), formatTime(now),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTodo"), err)
		return todo.Todo{}, repo.ErrFailedToInsert
	}

	return r.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: t.ID, UserID: t.UserID})
}

// GetOneTodo returns the zero Todo (ID == "") when not found.
func (r *implRepository) GetOneTodo(ctx context.Context, opt repo.GetOneTodoOptions) (todo.Todo, error) {
	query := fmt.Sprintf(`SELECT %s FROM todos WHERE id = ? AND user_id = ? LIMIT 1`, selectColumns)

	t, err := scanTodo(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return todo.Todo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTodo"), err)
		return todo.Todo{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTodos returns a page of Todos, newest first, and the total count.
func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]todo.Todo, int, error) {
	where, whereArgs := r.buildFilter(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM todos WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM todos %s", selectColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	todos := make([]todo.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTodos"), err)
			return nil, 0, repo.ErrFailedToList
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return todos, total, nil
}

// UpdateTodo writes the full new state of a Todo. Returns the zero Todo
// when not found.
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (todo.Todo, error) {
	const query = `
		UPDATE todos
		SET title = ?, description = ?, completed = ?, due_date = ?, priority = ?, tags = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description, boolToInt(opt.Completed), formatNullTime(opt.DueDate),
		string(opt.Priority), opt.Tags, formatTime(r.now().UTC()), opt.ID, opt.UserID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTodo"), err)
		return todo.Todo{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return todo.Todo{}, nil
	}

	return r.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: opt.ID, UserID: opt.UserID})
}

// DeleteTodo removes a Todo. Deleting a missing Todo is a no-op.
func (r *implRepository) DeleteTodo(ctx context.Context, opt repo.DeleteTodoOptions) error {
	const query = `DELETE FROM todos WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTodo"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(s scanner) (todo.Todo, error) {
	var (
		t                    todo.Todo
		completed            int
		dueDate              sql.NullString
		priority             string
		createdAt, updatedAt string
	)
	err := s.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &completed, &dueDate, &priority, &t.Tags, &createdAt, &updatedAt)
	if err != nil {
		return todo.Todo{}, err
	}

	t.Completed = completed != 0
	t.Priority = model.Priority(priority)

	if dueDate.Valid {
		d, err := time.Parse(timeLayout, dueDate.String)
		if err != nil {
			return todo.Todo{}, fmt.Errorf("parsing due_date: %w", err)
		}
		t.DueDate = &d
	}
	if t.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return todo.Todo{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return todo.Todo{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return t, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
