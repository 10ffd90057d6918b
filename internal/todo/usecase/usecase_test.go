package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"todo-tracker/internal/model"
	"todo-tracker/internal/naturallanguage"
	"todo-tracker/internal/todo"
	"todo-tracker/internal/todo/repository/memory"
	"todo-tracker/pkg/datemath"
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

// Wednesday, May 1, 2024 15:30 UTC
var refTime = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

var (
	alice = model.Scope{UserID: "alice"}
	bob   = model.Scope{UserID: "bob"}
)

type failingExtractor struct{ err error }

func (f failingExtractor) Parse(string) (naturallanguage.Result, error) {
	return naturallanguage.Result{}, f.err
}

func newTestUseCase(t *testing.T) *implUseCase {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	ex := naturallanguage.New(
		naturallanguage.NewDatemathResolver(p),
		naturallanguage.WithClock(func() time.Time { return refTime }),
	)
	l := &mockLogger{}
	return New(memory.New(l), ex, l)
}

func ptr[T any](v T) *T { return &v }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		uc := newTestUseCase(t)
		out, err := uc.Create(ctx, alice, todo.CreateInput{Title: "  Buy milk  "})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if out.Todo.Title != "Buy milk" {
			t.Errorf("Title = %q, want trimmed", out.Todo.Title)
		}
		if out.Todo.Priority != model.PriorityMedium {
			t.Errorf("Priority = %q, want MEDIUM", out.Todo.Priority)
		}
		if out.Todo.Tags != "" {
			t.Errorf("Tags = %q, want empty", out.Todo.Tags)
		}
		if out.Todo.UserID != "alice" {
			t.Errorf("UserID = %q", out.Todo.UserID)
		}
	})

	t.Run("tags normalised", func(t *testing.T) {
		uc := newTestUseCase(t)
		out, err := uc.Create(ctx, alice, todo.CreateInput{Title: "x", Tags: ptr(" work , ,home ")})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if out.Todo.Tags != "work,home" {
			t.Errorf("Tags = %q, want work,home", out.Todo.Tags)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		uc := newTestUseCase(t)
		if _, err := uc.Create(ctx, alice, todo.CreateInput{Title: "   "}); !errors.Is(err, todo.ErrEmptyTitle) {
			t.Errorf("error = %v, want ErrEmptyTitle", err)
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		uc := newTestUseCase(t)
		_, err := uc.Create(ctx, alice, todo.CreateInput{Title: "x", Priority: ptr(model.Priority("CRITICAL"))})
		if !errors.Is(err, todo.ErrInvalidPriority) {
			t.Errorf("error = %v, want ErrInvalidPriority", err)
		}
	})
}

func TestCreateFromText(t *testing.T) {
	ctx := context.Background()

	t.Run("all fields", func(t *testing.T) {
		uc := newTestUseCase(t)
		before := testutil.ToFloat64(extractedFields.WithLabelValues("due_date"))

		out, err := uc.CreateFromText(ctx, alice, todo.CreateFromTextInput{Text: "Buy milk tomorrow at 5pm p:high #groceries"})
		if err != nil {
			t.Fatalf("CreateFromText() error = %v", err)
		}
		got := out.Todo
		if got.Title != "Buy milk" {
			t.Errorf("Title = %q", got.Title)
		}
		if got.Priority != model.PriorityHigh {
			t.Errorf("Priority = %q", got.Priority)
		}
		if got.Tags != "groceries" {
			t.Errorf("Tags = %q", got.Tags)
		}
		want := time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC)
		if got.DueDate == nil || !got.DueDate.Equal(want) {
			t.Errorf("DueDate = %v, want %v", got.DueDate, want)
		}
		if out.Extraction.Title != "Buy milk" {
			t.Errorf("Extraction.Title = %q", out.Extraction.Title)
		}

		after := testutil.ToFloat64(extractedFields.WithLabelValues("due_date"))
		if after != before+1 {
			t.Errorf("due_date counter moved by %v, want 1", after-before)
		}
	})

	t.Run("priority defaults to medium", func(t *testing.T) {
		uc := newTestUseCase(t)
		out, err := uc.CreateFromText(ctx, alice, todo.CreateFromTextInput{Text: "Call mom"})
		if err != nil {
			t.Fatalf("CreateFromText() error = %v", err)
		}
		if out.Todo.Priority != model.PriorityMedium {
			t.Errorf("Priority = %q, want MEDIUM", out.Todo.Priority)
		}
		if out.Extraction.Priority != nil {
			t.Error("raw extraction must keep priority absent")
		}
		if out.Todo.DueDate != nil || out.Todo.Tags != "" {
			t.Errorf("unexpected fields %+v", out.Todo)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		uc := newTestUseCase(t)
		if _, err := uc.CreateFromText(ctx, alice, todo.CreateFromTextInput{Text: " \t"}); !errors.Is(err, todo.ErrEmptyText) {
			t.Errorf("error = %v, want ErrEmptyText", err)
		}
	})

	t.Run("markers only", func(t *testing.T) {
		uc := newTestUseCase(t)
		_, err := uc.CreateFromText(ctx, alice, todo.CreateFromTextInput{Text: "tomorrow p:low #x"})
		if !errors.Is(err, todo.ErrEmptyTitle) {
			t.Errorf("error = %v, want ErrEmptyTitle", err)
		}
		list, _ := uc.List(ctx, alice, todo.ListInput{})
		if list.Total != 0 {
			t.Errorf("nothing should be stored, got %d", list.Total)
		}
	})

	t.Run("extractor failure", func(t *testing.T) {
		l := &mockLogger{}
		boom := errors.New("boom")
		uc := New(memory.New(l), failingExtractor{err: boom}, l)
		if _, err := uc.CreateFromText(ctx, alice, todo.CreateFromTextInput{Text: "x"}); !errors.Is(err, boom) {
			t.Errorf("error = %v, want boom", err)
		}
	})
}

func TestParse(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	out, err := uc.Parse(ctx, todo.ParseInput{Text: "Team meeting next monday priority:urgent @work"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if out.Extraction.Title != "Team meeting" {
		t.Errorf("Title = %q", out.Extraction.Title)
	}
	if out.Extraction.Priority == nil || *out.Extraction.Priority != model.PriorityUrgent {
		t.Errorf("Priority = %v", out.Extraction.Priority)
	}

	list, _ := uc.List(ctx, alice, todo.ListInput{})
	if list.Total != 0 {
		t.Errorf("preview must not persist, got %d todos", list.Total)
	}

	if _, err := uc.Parse(ctx, todo.ParseInput{}); !errors.Is(err, todo.ErrEmptyText) {
		t.Errorf("error = %v, want ErrEmptyText", err)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	for _, text := range []string{"Buy milk p:high #groceries", "Call mom p:low", "Pay rent p:urgent #bills"} {
		if _, err := uc.CreateFromText(ctx, alice, todo.CreateFromTextInput{Text: text}); err != nil {
			t.Fatalf("CreateFromText(%q) error = %v", text, err)
		}
	}
	if _, err := uc.Create(ctx, bob, todo.CreateInput{Title: "Bob's milk"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		name  string
		input todo.ListInput
		want  []string
	}{
		{"all newest first", todo.ListInput{}, []string{"Pay rent", "Call mom", "Buy milk"}},
		{"search", todo.ListInput{Search: "MILK"}, []string{"Buy milk"}},
		{"tag", todo.ListInput{Tag: "bills"}, []string{"Pay rent"}},
		{"priority", todo.ListInput{Priority: model.PriorityLow}, []string{"Call mom"}},
		{"paged", todo.ListInput{Limit: 2, Offset: 1}, []string{"Call mom", "Buy milk"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.List(ctx, alice, tt.input)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(out.Todos) != len(tt.want) {
				t.Fatalf("got %d todos, want %d", len(out.Todos), len(tt.want))
			}
			for i, td := range out.Todos {
				if td.Title != tt.want[i] {
					t.Errorf("todos[%d] = %q, want %q", i, td.Title, tt.want[i])
				}
			}
		})
	}

	if _, err := uc.List(ctx, alice, todo.ListInput{Priority: "NOPE"}); !errors.Is(err, todo.ErrInvalidPriority) {
		t.Errorf("error = %v, want ErrInvalidPriority", err)
	}
}

func TestDetailUpdateToggleDelete(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	created, err := uc.Create(ctx, alice, todo.CreateInput{Title: "Write report", Tags: ptr("work")})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	id := created.Todo.ID

	t.Run("detail", func(t *testing.T) {
		out, err := uc.Detail(ctx, alice, id)
		if err != nil {
			t.Fatalf("Detail() error = %v", err)
		}
		if out.Todo.Title != "Write report" {
			t.Errorf("Title = %q", out.Todo.Title)
		}
		if _, err := uc.Detail(ctx, bob, id); !errors.Is(err, todo.ErrTodoNotFound) {
			t.Errorf("other user: error = %v, want ErrTodoNotFound", err)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		due := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		out, err := uc.Update(ctx, alice, todo.UpdateInput{
			ID:       id,
			DueDate:  &due,
			Priority: ptr(model.PriorityUrgent),
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if out.Todo.Title != "Write report" || out.Todo.Tags != "work" {
			t.Errorf("untouched fields changed: %+v", out.Todo)
		}
		if out.Todo.Priority != model.PriorityUrgent {
			t.Errorf("Priority = %q", out.Todo.Priority)
		}
		if out.Todo.DueDate == nil || !out.Todo.DueDate.Equal(due) {
			t.Errorf("DueDate = %v", out.Todo.DueDate)
		}
	})

	t.Run("update validation", func(t *testing.T) {
		if _, err := uc.Update(ctx, alice, todo.UpdateInput{ID: id, Title: ptr(" ")}); !errors.Is(err, todo.ErrEmptyTitle) {
			t.Errorf("error = %v, want ErrEmptyTitle", err)
		}
		if _, err := uc.Update(ctx, alice, todo.UpdateInput{ID: id, Priority: ptr(model.Priority("x"))}); !errors.Is(err, todo.ErrInvalidPriority) {
			t.Errorf("error = %v, want ErrInvalidPriority", err)
		}
		if _, err := uc.Update(ctx, bob, todo.UpdateInput{ID: id, Title: ptr("mine")}); !errors.Is(err, todo.ErrTodoNotFound) {
			t.Errorf("error = %v, want ErrTodoNotFound", err)
		}
	})

	t.Run("toggle", func(t *testing.T) {
		out, err := uc.ToggleCompletion(ctx, alice, id)
		if err != nil {
			t.Fatalf("ToggleCompletion() error = %v", err)
		}
		if !out.Todo.Completed {
			t.Error("expected completed after first toggle")
		}
		out, err = uc.ToggleCompletion(ctx, alice, id)
		if err != nil {
			t.Fatalf("ToggleCompletion() error = %v", err)
		}
		if out.Todo.Completed {
			t.Error("expected pending after second toggle")
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := uc.Delete(ctx, bob, id); !errors.Is(err, todo.ErrTodoNotFound) {
			t.Errorf("other user: error = %v, want ErrTodoNotFound", err)
		}
		if err := uc.Delete(ctx, alice, id); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if err := uc.Delete(ctx, alice, id); !errors.Is(err, todo.ErrTodoNotFound) {
			t.Errorf("second delete: error = %v, want ErrTodoNotFound", err)
		}
	})
}
