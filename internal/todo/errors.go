package todo

import "errors"

var (
	ErrTodoNotFound    = errors.New("todo not found")
	ErrEmptyTitle      = errors.New("title is empty")
	ErrEmptyText       = errors.New("input text is empty")
	ErrInvalidPriority = errors.New("invalid priority")
)
