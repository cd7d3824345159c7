package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"

  "github.com/yungbote/lumin-backend/internal/clients/anthropic"
  "github.com/yungbote/lumin-backend/internal/handlers"
  "github.com/yungbote/lumin-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler     *handlers.AuthHandler
  AuthMiddleware  *middleware.AuthMiddleware
  LessonHandler   *handlers.LessonHandler
  GenerateHandler *handlers.GenerateHandler
  AIClient        anthropic.Client
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:3000",
      "http://localhost:5173",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/health", handlers.HealthCheck(cfg.AIClient))
  api := router.Group("/api")
  api.POST("/auth/register", cfg.AuthHandler.Register)
  api.POST("/auth/login", cfg.AuthHandler.Login)

// ===============
// || Protected ||
// ===============
  protected := api.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  protected.GET("/lessons", cfg.LessonHandler.ListUserLessons)
  protected.DELETE("/lessons/:id", cfg.LessonHandler.DeleteUserLesson)
  protected.POST("/generate", cfg.GenerateHandler.Generate)

  return router
}
