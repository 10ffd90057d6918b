package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	todoHTTP "todo-tracker/internal/todo/delivery/http"
	todoUC "todo-tracker/internal/todo/usecase"
)

// setupTodoDomain wires the todo use case and handler and registers
// /api/v1/todos.
func (srv HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := todoUC.New(srv.todoRepo, srv.extractor, srv.l)
	h := todoHTTP.New(srv.l, uc)
	todoHTTP.RegisterRoutes(api.Group("/todos"), h, srv.middleware)

	srv.l.Infof(ctx, "Todo domain registered")
	return nil
}
