package http

import (
	"github.com/gin-gonic/gin"

	"taskplanner/internal/adapter/http/handlers"
	"taskplanner/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	authHandler *handlers.AuthHandler,
	weatherHandler *handlers.WeatherHandler,
	preferencesHandler *handlers.PreferencesHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks/stats", taskHandler.GetStats)
		api.PUT("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
		api.POST("/tasks/:id/toggle", taskHandler.ToggleCompletion)
		api.PATCH("/tasks/:id/priority", taskHandler.SetPriority)
		api.PATCH("/tasks/:id/due-date", taskHandler.SetDueDate)
		api.PATCH("/tasks/:id/notes", taskHandler.SetNotes)
		api.POST("/tasks/:id/steps", taskHandler.AddStep)
		api.POST("/tasks/:id/steps/:stepId/toggle", taskHandler.ToggleStep)

		api.GET("/view-mode", taskHandler.GetViewMode)
		api.POST("/view-mode/toggle", taskHandler.ToggleViewMode)

		api.GET("/preferences/dark-mode", preferencesHandler.GetDarkMode)
		api.PUT("/preferences/dark-mode", preferencesHandler.SetDarkMode)

		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/session", authHandler.GetSession)

		api.GET("/weather", weatherHandler.GetCurrent)
	}
}
