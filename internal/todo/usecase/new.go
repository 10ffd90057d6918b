package usecase

import (
	"todo-tracker/internal/naturallanguage"
	"todo-tracker/internal/todo/repository"
	"todo-tracker/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo      repository.Repository
	extractor naturallanguage.Extractor
	l         log.Logger
}

// New creates a new todo UseCase implementation.
func New(repo repository.Repository, extractor naturallanguage.Extractor, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		extractor: extractor,
		l:         l,
	}
}
