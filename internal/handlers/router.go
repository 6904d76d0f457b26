package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hero-task-tracker/internal/middleware"
	"github.com/yukikurage/hero-task-tracker/internal/services"
)

// Services is everything the HTTP layer calls into.
type Services struct {
	Auth         *services.AuthService
	Users        *services.UserService
	Tasks        *services.TaskService
	Assignments  *services.AssignmentService
	Intake       *services.IntakeService
	Stats        *services.StatsService
	Suggestions  *services.SuggestionService
	HealthChecks map[string]HealthCheck
}

// RegisterRoutes mounts the API on r. Session middleware must already be
// installed.
func RegisterRoutes(r *gin.Engine, svc Services) {
	authHandler := NewAuthHandler(svc.Auth)
	taskHandler := NewTaskHandler(svc.Tasks, svc.Assignments, svc.Suggestions)
	publicHandler := NewPublicHandler(svc.Intake)
	adminHandler := NewAdminHandler(svc.Users, svc.Tasks, svc.Assignments)
	statsHandler := NewStatsHandler(svc.Stats)
	healthHandler := NewHealthHandler(svc.HealthChecks)

	// Health check endpoint
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(svc.Users), authHandler.GetCurrentUser)
		}

		api.POST("/public/tasks", publicHandler.SubmitTask)

		// Task routes (protected, owner-scoped)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(svc.Users))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.POST("/suggest", taskHandler.SuggestTasks)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(svc.Users), middleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users", adminHandler.CreateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.GET("/tasks", adminHandler.ListAllTasks)
			admin.PUT("/tasks/:id/reassign", adminHandler.ReassignTask)
			admin.GET("/stats", statsHandler.Overview)
			admin.GET("/stats/daily", statsHandler.Daily)
			admin.GET("/stats/users", statsHandler.Users)
		}
	}
}
