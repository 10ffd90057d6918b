package sqlite_test

import (
	"context"
	"testing"

	"todo-tracker/internal/todo/repository"
	"todo-tracker/internal/todo/repository/repotest"
	"todo-tracker/internal/todo/repository/sqlite"
	sqlitedb "todo-tracker/pkg/sqlite"
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

func TestSQLiteRepository(t *testing.T) {
	repotest.Run(t, func(t *testing.T) repository.Repository {
		ctx := context.Background()
		db, err := sqlitedb.Open(ctx, sqlitedb.MemoryPath)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		t.Cleanup(func() { db.Close() })

		if err := sqlite.Migrate(ctx, db); err != nil {
			t.Fatalf("Migrate() error = %v", err)
		}
		return sqlite.New(db, &mockLogger{})
	})
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sqlitedb.Open(ctx, sqlitedb.MemoryPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := sqlite.Migrate(ctx, db); err != nil {
			t.Fatalf("Migrate() run %d error = %v", i+1, err)
		}
	}
}

func TestNew_NilDBPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil db")
		}
	}()
	sqlite.New(nil, &mockLogger{})
}
