package memory

import (
	"sync"
	"time"

	"todo-tracker/internal/todo"
	"todo-tracker/internal/todo/repository"
	"todo-tracker/pkg/log"
)

// record is a stored todo plus its insertion sequence, used to order
// todos created within the same clock tick.
type record struct {
	todo todo.Todo
	seq  uint64
}

type implRepository struct {
	mu      sync.RWMutex
	records map[string]record
	seq     uint64
	now     func() time.Time
	l       log.Logger
}

// New creates an in-process Repository for the todo domain. Data lives
// for the lifetime of the process.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		records: make(map[string]record),
		now:     time.Now,
		l:       l,
	}
}
