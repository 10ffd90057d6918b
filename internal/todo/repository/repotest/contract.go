// Package repotest holds the behaviour every todo Repository implementation
// must share, runnable against any backend.
package repotest

import (
	"context"
	"testing"
	"time"

	"todo-tracker/internal/model"
	"todo-tracker/internal/todo"
	"todo-tracker/internal/todo/repository"
)

// Run exercises repo implementations built by newRepo. Each subtest gets a
// fresh, empty repository.
func Run(t *testing.T, newRepo func(t *testing.T) repository.Repository) {
	t.Helper()

	t.Run("CreateAndGet", func(t *testing.T) { testCreateAndGet(t, newRepo(t)) })
	t.Run("GetMissing", func(t *testing.T) { testGetMissing(t, newRepo(t)) })
	t.Run("UserIsolation", func(t *testing.T) { testUserIsolation(t, newRepo(t)) })
	t.Run("ListOrderAndPagination", func(t *testing.T) { testListOrderAndPagination(t, newRepo(t)) })
	t.Run("ListFilters", func(t *testing.T) { testListFilters(t, newRepo(t)) })
	t.Run("Update", func(t *testing.T) { testUpdate(t, newRepo(t)) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, newRepo(t)) })
}

func mustCreate(t *testing.T, r repository.Repository, opt repository.CreateTodoOptions) todo.Todo {
	t.Helper()
	created, err := r.CreateTodo(context.Background(), opt)
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
	return created
}

func testCreateAndGet(t *testing.T, r repository.Repository) {
	ctx := context.Background()
	due := time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC)

	created := mustCreate(t, r, repository.CreateTodoOptions{
		UserID:      "u1",
		Title:       "Buy milk",
		Description: "2 litres",
		DueDate:     &due,
		Priority:    model.PriorityHigh,
		Tags:        "groceries,home",
	})
	if created.ID == "" {
		t.Fatal("expected generated ID")
	}
	if created.Completed {
		t.Error("new todo should not be completed")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	got, err := r.GetOneTodo(ctx, repository.GetOneTodoOptions{ID: created.ID, UserID: "u1"})
	if err != nil {
		t.Fatalf("GetOneTodo() error = %v", err)
	}
	if got.Title != "Buy milk" || got.Description != "2 litres" {
		t.Errorf("got title=%q description=%q", got.Title, got.Description)
	}
	if got.Priority != model.PriorityHigh {
		t.Errorf("Priority = %q, want HIGH", got.Priority)
	}
	if got.Tags != "groceries,home" {
		t.Errorf("Tags = %q", got.Tags)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, due)
	}
}

func testGetMissing(t *testing.T, r repository.Repository) {
	got, err := r.GetOneTodo(context.Background(), repository.GetOneTodoOptions{ID: "missing", UserID: "u1"})
	if err != nil {
		t.Fatalf("GetOneTodo() error = %v", err)
	}
	if got.ID != "" {
		t.Errorf("expected zero Todo, got ID %q", got.ID)
	}
}

func testUserIsolation(t *testing.T, r repository.Repository) {
	ctx := context.Background()
	created := mustCreate(t, r, repository.CreateTodoOptions{UserID: "u1", Title: "mine", Priority: model.PriorityLow})

	got, err := r.GetOneTodo(ctx, repository.GetOneTodoOptions{ID: created.ID, UserID: "u2"})
	if err != nil {
		t.Fatalf("GetOneTodo() error = %v", err)
	}
	if got.ID != "" {
		t.Error("another user's todo must not be visible")
	}

	todos, total, err := r.ListTodos(ctx, repository.ListTodosOptions{UserID: "u2"})
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if total != 0 || len(todos) != 0 {
		t.Errorf("u2 sees %d todos (total %d), want none", len(todos), total)
	}

	updated, err := r.UpdateTodo(ctx, repository.UpdateTodoOptions{ID: created.ID, UserID: "u2", Title: "stolen", Priority: model.PriorityLow})
	if err != nil {
		t.Fatalf("UpdateTodo() error = %v", err)
	}
	if updated.ID != "" {
		t.Error("update by another user must not apply")
	}

	if err := r.DeleteTodo(ctx, repository.DeleteTodoOptions{ID: created.ID, UserID: "u2"}); err != nil {
		t.Fatalf("DeleteTodo() error = %v", err)
	}
	got, _ = r.GetOneTodo(ctx, repository.GetOneTodoOptions{ID: created.ID, UserID: "u1"})
	if got.Title != "mine" {
		t.Error("delete by another user must not apply")
	}
}

func testListOrderAndPagination(t *testing.T, r repository.Repository) {
	ctx := context.Background()
	for _, title := range []string{"first", "second", "third"} {
		mustCreate(t, r, repository.CreateTodoOptions{UserID: "u1", Title: title, Priority: model.PriorityMedium})
	}

	todos, total, err := r.ListTodos(ctx, repository.ListTodosOptions{UserID: "u1"})
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	want := []string{"third", "second", "first"}
	for i, td := range todos {
		if td.Title != want[i] {
			t.Errorf("todos[%d] = %q, want %q", i, td.Title, want[i])
		}
	}

	page, total, err := r.ListTodos(ctx, repository.ListTodosOptions{UserID: "u1", Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if total != 3 {
		t.Errorf("paged total = %d, want 3", total)
	}
	if len(page) != 1 || page[0].Title != "second" {
		t.Errorf("page = %+v, want [second]", page)
	}

	page, _, err = r.ListTodos(ctx, repository.ListTodosOptions{UserID: "u1", Offset: 10})
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if len(page) != 0 {
		t.Errorf("offset past end returned %d todos", len(page))
	}
}

func testListFilters(t *testing.T, r repository.Repository) {
	ctx := context.Background()
	milk := mustCreate(t, r, repository.CreateTodoOptions{UserID: "u1", Title: "Buy MILK", Priority: model.PriorityHigh, Tags: "groceries"})
	mustCreate(t, r, repository.CreateTodoOptions{UserID: "u1", Title: "Call mom", Description: "about milk", Priority: model.PriorityLow, Tags: "family"})
	mustCreate(t, r, repository.CreateTodoOptions{UserID: "u1", Title: "Pay rent", Priority: model.PriorityUrgent})

	if _, err := r.UpdateTodo(ctx, repository.UpdateTodoOptions{
		ID: milk.ID, UserID: "u1", Title: milk.Title, Completed: true, Priority: milk.Priority, Tags: milk.Tags,
	}); err != nil {
		t.Fatalf("UpdateTodo() error = %v", err)
	}

	done, pending := true, false
	tests := []struct {
		name string
		opt  repository.ListTodosOptions
		want int
	}{
		{"search title and description", repository.ListTodosOptions{Search: "milk"}, 2},
		{"search case-insensitive", repository.ListTodosOptions{Search: "RENT"}, 1},
		{"completed", repository.ListTodosOptions{Completed: &done}, 1},
		{"pending", repository.ListTodosOptions{Completed: &pending}, 2},
		{"tag", repository.ListTodosOptions{Tag: "GROC"}, 1},
		{"priority", repository.ListTodosOptions{Priority: model.PriorityUrgent}, 1},
		{"combined", repository.ListTodosOptions{Search: "milk", Completed: &pending}, 1},
		{"no match", repository.ListTodosOptions{Search: "zzz"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opt.UserID = "u1"
			todos, total, err := r.ListTodos(ctx, tt.opt)
			if err != nil {
				t.Fatalf("ListTodos() error = %v", err)
			}
			if total != tt.want || len(todos) != tt.want {
				t.Errorf("got %d todos (total %d), want %d", len(todos), total, tt.want)
			}
		})
	}
}

func testUpdate(t *testing.T, r repository.Repository) {
	ctx := context.Background()
	due := time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC)
	created := mustCreate(t, r, repository.CreateTodoOptions{UserID: "u1", Title: "old", DueDate: &due, Priority: model.PriorityLow})

	updated, err := r.UpdateTodo(ctx, repository.UpdateTodoOptions{
		ID:          created.ID,
		UserID:      "u1",
		Title:       "new",
		Description: "details",
		Completed:   true,
		Priority:    model.PriorityUrgent,
		Tags:        "work",
	})
	if err != nil {
		t.Fatalf("UpdateTodo() error = %v", err)
	}
	if updated.Title != "new" || updated.Description != "details" || !updated.Completed {
		t.Errorf("unexpected update result %+v", updated)
	}
	if updated.DueDate != nil {
		t.Errorf("DueDate = %v, want cleared", updated.DueDate)
	}
	if updated.Priority != model.PriorityUrgent || updated.Tags != "work" {
		t.Errorf("Priority=%q Tags=%q", updated.Priority, updated.Tags)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt must not change on update")
	}

	missing, err := r.UpdateTodo(ctx, repository.UpdateTodoOptions{ID: "missing", UserID: "u1", Title: "x", Priority: model.PriorityLow})
	if err != nil {
		t.Fatalf("UpdateTodo() error = %v", err)
	}
	if missing.ID != "" {
		t.Error("expected zero Todo for missing ID")
	}
}

func testDelete(t *testing.T, r repository.Repository) {
	ctx := context.Background()
	created := mustCreate(t, r, repository.CreateTodoOptions{UserID: "u1", Title: "gone", Priority: model.PriorityLow})

	if err := r.DeleteTodo(ctx, repository.DeleteTodoOptions{ID: created.ID, UserID: "u1"}); err != nil {
		t.Fatalf("DeleteTodo() error = %v", err)
	}
	got, err := r.GetOneTodo(ctx, repository.GetOneTodoOptions{ID: created.ID, UserID: "u1"})
	if err != nil {
		t.Fatalf("GetOneTodo() error = %v", err)
	}
	if got.ID != "" {
		t.Error("todo still present after delete")
	}

	if err := r.DeleteTodo(ctx, repository.DeleteTodoOptions{ID: created.ID, UserID: "u1"}); err != nil {
		t.Errorf("deleting a missing todo should be a no-op, got %v", err)
	}
}
