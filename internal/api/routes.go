package api

import (
	"net/http"

	"github.com/michalina-sz/exercise-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// StaticConfig points the router at the landing page and assets directory.
type StaticConfig struct {
	IndexFile string
	PublicDir string
}

// DefaultStaticConfig matches the repository layout.
func DefaultStaticConfig() StaticConfig {
	return StaticConfig{
		IndexFile: "./views/index.html",
		PublicDir: "./public",
	}
}

// SetupRoutes binds all handlers and middleware onto the router.
func SetupRoutes(
	router *gin.Engine,
	static StaticConfig,
	userService service.UserService,
	exerciseService service.ExerciseService,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware())

	router.StaticFile("/", static.IndexFile)
	router.Static("/public", static.PublicDir)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/users", userHandler.CreateUser)
		apiGroup.GET("/users", userHandler.ListUsers)
		apiGroup.POST("/users/:id/exercises", exerciseHandler.AddExercise)
		apiGroup.GET("/users/:id/logs", exerciseHandler.GetLog)
	}
}
