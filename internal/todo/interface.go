package todo

import (
	"context"

	"todo-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Todo CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	ToggleCompletion(ctx context.Context, sc model.Scope, id string) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Natural language
	CreateFromText(ctx context.Context, sc model.Scope, input CreateFromTextInput) (CreateFromTextOutput, error)
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
}
