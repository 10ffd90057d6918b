package usecase

import (
	"strings"
	"time"

	"todo-tracker/internal/model"
	"todo-tracker/internal/todo"
)

// coalesce returns *newVal when set, otherwise existing. Used for partial updates.
func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}

func coalescePtr(newVal, existing *time.Time) *time.Time {
	if newVal != nil {
		return newVal
	}
	return existing
}

func (uc *implUseCase) resolvePriority(p *model.Priority) (model.Priority, error) {
	if p == nil {
		return model.DefaultPriority, nil
	}
	if !p.IsValid() {
		return "", todo.ErrInvalidPriority
	}
	return *p, nil
}

// normalizeTags trims every comma-separated tag and drops empty ones.
func normalizeTags(tags *string) string {
	if tags == nil {
		return ""
	}
	parts := strings.Split(*tags, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}
