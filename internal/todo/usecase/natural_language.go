package usecase

import (
	"context"
	"strings"

	"todo-tracker/internal/model"
	"todo-tracker/internal/todo"
)

// CreateFromText extracts a Todo from free text and stores it.
func (uc *implUseCase) CreateFromText(ctx context.Context, sc model.Scope, input todo.CreateFromTextInput) (todo.CreateFromTextOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return todo.CreateFromTextOutput{}, todo.ErrEmptyText
	}

	res, err := uc.extractor.Parse(input.Text)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFromText Parse: %v", err)
		return todo.CreateFromTextOutput{}, err
	}
	if res.Title == "" {
		return todo.CreateFromTextOutput{}, todo.ErrEmptyTitle
	}

	out, err := uc.Create(ctx, sc, todo.CreateInput{
		Title:    res.Title,
		DueDate:  res.DueDate,
		Priority: res.Priority,
		Tags:     res.Labels,
	})
	if err != nil {
		return todo.CreateFromTextOutput{}, err
	}

	observeExtraction(res)
	uc.l.Debugf(ctx, "uc.CreateFromText: created %s from %q", out.Todo.ID, input.Text)

	return todo.CreateFromTextOutput{Todo: out.Todo, Extraction: res}, nil
}

// Parse previews the extraction of text without storing anything.
func (uc *implUseCase) Parse(ctx context.Context, input todo.ParseInput) (todo.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return todo.ParseOutput{}, todo.ErrEmptyText
	}

	res, err := uc.extractor.Parse(input.Text)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Parse Parse: %v", err)
		return todo.ParseOutput{}, err
	}
	return todo.ParseOutput{Extraction: res}, nil
}
