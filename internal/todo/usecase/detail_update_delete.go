package usecase

import (
	"context"
	"strings"

	"todo-tracker/internal/model"
	"todo-tracker/internal/todo"
	repo "todo-tracker/internal/todo/repository"
)

// Detail retrieves a single Todo by ID. Returns ErrTodoNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (todo.DetailOutput, error) {
	t, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return todo.DetailOutput{}, err
	}
	return todo.DetailOutput{Todo: t}, nil
}

// Update applies a partial update to an existing Todo.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input todo.UpdateInput) (todo.UpdateOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return todo.UpdateOutput{}, err
	}

	title := existing.Title
	if input.Title != nil {
		title = strings.TrimSpace(*input.Title)
		if title == "" {
			return todo.UpdateOutput{}, todo.ErrEmptyTitle
		}
	}

	priority := existing.Priority
	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return todo.UpdateOutput{}, todo.ErrInvalidPriority
		}
		priority = *input.Priority
	}

	tags := existing.Tags
	if input.Tags != nil {
		tags = normalizeTags(input.Tags)
	}

	return uc.save(ctx, "uc.Update", repo.UpdateTodoOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Title:       title,
		Description: coalesce(input.Description, existing.Description),
		Completed:   coalesce(input.Completed, existing.Completed),
		DueDate:     coalescePtr(input.DueDate, existing.DueDate),
		Priority:    priority,
		Tags:        tags,
	})
}

// ToggleCompletion flips the completed flag of a Todo.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, sc model.Scope, id string) (todo.UpdateOutput, error) {
	existing, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return todo.UpdateOutput{}, err
	}

	return uc.save(ctx, "uc.ToggleCompletion", repo.UpdateTodoOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Title:       existing.Title,
		Description: existing.Description,
		Completed:   !existing.Completed,
		DueDate:     existing.DueDate,
		Priority:    existing.Priority,
		Tags:        existing.Tags,
	})
}

// Delete removes a Todo by ID. Returns ErrTodoNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getOwned(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTodo(ctx, repo.DeleteTodoOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTodo: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (todo.Todo, error) {
	t, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneTodo: %v", err)
		return todo.Todo{}, err
	}
	if t.ID == "" {
		return todo.Todo{}, todo.ErrTodoNotFound
	}
	return t, nil
}

func (uc *implUseCase) save(ctx context.Context, op string, opt repo.UpdateTodoOptions) (todo.UpdateOutput, error) {
	t, err := uc.repo.UpdateTodo(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "%s UpdateTodo: %v", op, err)
		return todo.UpdateOutput{}, err
	}
	// Deleted between read and write.
	if t.ID == "" {
		return todo.UpdateOutput{}, todo.ErrTodoNotFound
	}
	return todo.UpdateOutput{Todo: t}, nil
}
