package memory_test

import (
	"context"
	"testing"
	"time"

	"todo-tracker/internal/model"
	"todo-tracker/internal/todo/repository"
	"todo-tracker/internal/todo/repository/memory"
	"todo-tracker/internal/todo/repository/repotest"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestMemoryRepository(t *testing.T) {
	repotest.Run(t, func(t *testing.T) repository.Repository {
		return memory.New(&mockLogger{})
	})
}

func TestMemoryRepository_DueDateIsCopied(t *testing.T) {
	ctx := context.Background()
	r := memory.New(&mockLogger{})

	due := time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC)
	created, err := r.CreateTodo(ctx, repository.CreateTodoOptions{UserID: "u1", Title: "t", DueDate: &due, Priority: model.PriorityLow})
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}

	due = due.Add(time.Hour)
	*created.DueDate = created.DueDate.Add(24 * time.Hour)

	got, _ := r.GetOneTodo(ctx, repository.GetOneTodoOptions{ID: created.ID, UserID: "u1"})
	want := time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC)
	if !got.DueDate.Equal(want) {
		t.Errorf("stored DueDate = %v, want %v", got.DueDate, want)
	}
}
