package http

import (
	"github.com/gin-gonic/gin"

	"todo-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route requires a caller and is rate limited per caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	todos := rg.Group("", mw.Auth(), mw.RateLimit())
	{
		todos.POST("", h.Create)
		todos.POST("/natural-language", h.CreateFromText)
		todos.POST("/natural-language/preview", h.Preview)
		todos.GET("", h.List)
		todos.GET("/:id", h.Detail)
		todos.PATCH("/:id", h.Update)
		todos.PATCH("/:id/complete", h.ToggleCompletion)
		todos.DELETE("/:id", h.Delete)
	}
}
