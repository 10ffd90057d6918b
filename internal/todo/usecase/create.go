package usecase

import (
	"context"
	"strings"

	"todo-tracker/internal/model"
	"todo-tracker/internal/todo"
	repo "todo-tracker/internal/todo/repository"
)

// Create stores a new Todo for the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input todo.CreateInput) (todo.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return todo.CreateOutput{}, todo.ErrEmptyTitle
	}

	priority, err := uc.resolvePriority(input.Priority)
	if err != nil {
		return todo.CreateOutput{}, err
	}

	t, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		DueDate:     input.DueDate,
		Priority:    priority,
		Tags:        normalizeTags(input.Tags),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTodo: %v", err)
		return todo.CreateOutput{}, err
	}

	return todo.CreateOutput{Todo: t}, nil
}
