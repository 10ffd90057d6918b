package sqlite

import (
	"strings"

	repo "todo-tracker/internal/todo/repository"
)

// buildFilter builds the WHERE clause + args shared by the count and page queries.
// Non-empty filters are applied as AND conditions.
func (r *implRepository) buildFilter(opt repo.ListTodosOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.Search != "" {
		conditions = append(conditions, "(instr(lower(title), lower(?)) > 0 OR instr(lower(description), lower(?)) > 0)")
		args = append(args, opt.Search, opt.Search)
	}
	if opt.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, boolToInt(*opt.Completed))
	}
	if opt.Tag != "" {
		conditions = append(conditions, "instr(lower(tags), lower(?)) > 0")
		args = append(args, opt.Tag)
	}
	if opt.Priority != "" {
		conditions = append(conditions, "priority = ?")
		args = append(args, string(opt.Priority))
	}

	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTodos.
func (r *implRepository) buildListQuery(opt repo.ListTodosOptions) (string, []any) {
	where, args := r.buildFilter(opt)
	parts := []string{
		"WHERE " + where,
		"ORDER BY created_at DESC, rowid DESC",
	}

	// SQLite needs a LIMIT before OFFSET; -1 means unbounded.
	limit := -1
	if opt.Limit > 0 {
		limit = opt.Limit
	}
	parts = append(parts, "LIMIT ?")
	args = append(args, limit)

	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
