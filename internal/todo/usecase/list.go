package usecase

import (
	"context"

	"todo-tracker/internal/model"
	"todo-tracker/internal/todo"
	repo "todo-tracker/internal/todo/repository"
)

// List returns a paginated list of the caller's Todos, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input todo.ListInput) (todo.ListOutput, error) {
	if input.Priority != "" && !input.Priority.IsValid() {
		return todo.ListOutput{}, todo.ErrInvalidPriority
	}

	todos, total, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{
		UserID:    sc.UserID,
		Search:    input.Search,
		Completed: input.Completed,
		Tag:       input.Tag,
		Priority:  input.Priority,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTodos: %v", err)
		return todo.ListOutput{}, err
	}

	return todo.ListOutput{
		Todos:  todos,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
