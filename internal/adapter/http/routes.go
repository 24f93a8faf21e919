package http

import (
	"net/http"

	"todolist/internal/adapter/http/handlers"
	"todolist/internal/adapter/http/middleware"
	"todolist/pkg/apierrors"
	"todolist/web"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, todoHandler *handlers.TodoHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		// gin resolves the static segments below before the :id parameter.
		api.GET("/todos", todoHandler.ListTodos)
		api.POST("/todos", todoHandler.CreateTodo)
		api.GET("/todos/stats", todoHandler.GetStats)
		api.GET("/todos/category/:category", todoHandler.ListTodosByCategory)
		api.GET("/todos/priority/:priority", todoHandler.ListTodosByPriority)
		api.GET("/todos/:id", todoHandler.GetTodo)
		api.PUT("/todos/:id", todoHandler.UpdateTodo)
		api.DELETE("/todos/:id", todoHandler.DeleteTodo)
	}

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML())
	})
	r.StaticFS("/static", web.Assets())

	r.NoRoute(middleware.LanguageMiddleware(), func(c *gin.Context) {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgRouteNotFound, middleware.GetLang(c)),
		)
	})
}
