package http

import (
	"errors"
	"net/http"

	"todo-tracker/internal/naturallanguage"
	"todo-tracker/internal/todo"
	pkgErrors "todo-tracker/pkg/errors"
)

var (
	errTodoNotFound    = pkgErrors.NewHTTPError(http.StatusNotFound, "todo not found")
	errEmptyTitle      = pkgErrors.NewHTTPError(http.StatusBadRequest, "title is required")
	errEmptyText       = pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	errInvalidPriority = pkgErrors.NewHTTPError(http.StatusBadRequest, "priority must be one of LOW, MEDIUM, HIGH, URGENT")
	errInvalidDate     = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid date")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become 500 and are logged by the caller.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, todo.ErrTodoNotFound):
		return errTodoNotFound
	case errors.Is(err, todo.ErrEmptyTitle):
		return errEmptyTitle
	case errors.Is(err, todo.ErrEmptyText):
		return errEmptyText
	case errors.Is(err, todo.ErrInvalidPriority):
		return errInvalidPriority
	case errors.Is(err, naturallanguage.ErrInvalidDate):
		return errInvalidDate
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// mapRequestError maps domain validation errors raised while processing a
// request and passes binding errors through unchanged.
func (h *handler) mapRequestError(err error) error {
	if mapped := h.mapError(err); mapped != pkgErrors.ErrInternalServerError {
		return mapped
	}
	return err
}
