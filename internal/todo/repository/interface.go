package repository

import (
	"context"

	"todo-tracker/internal/todo"
)

// Repository is the composed interface for the todo domain data store.
type Repository interface {
	TodoRepository
}

// TodoRepository defines all data access methods for the Todo entity.
// Every method is scoped to opt.UserID; another user's todo is "not found".
type TodoRepository interface {
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (todo.Todo, error)
	GetOneTodo(ctx context.Context, opt GetOneTodoOptions) (todo.Todo, error)
	ListTodos(ctx context.Context, opt ListTodosOptions) ([]todo.Todo, int, error)
	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (todo.Todo, error)
	DeleteTodo(ctx context.Context, opt DeleteTodoOptions) error
}
