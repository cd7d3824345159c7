package main

import (
  "fmt"
  "os"
  "time"

  "github.com/joho/godotenv"

  "github.com/yungbote/lumin-backend/internal/clients/anthropic"
  "github.com/yungbote/lumin-backend/internal/db"
  "github.com/yungbote/lumin-backend/internal/handlers"
  "github.com/yungbote/lumin-backend/internal/logger"
  "github.com/yungbote/lumin-backend/internal/middleware"
  "github.com/yungbote/lumin-backend/internal/server"
  "github.com/yungbote/lumin-backend/internal/services"
  "github.com/yungbote/lumin-backend/internal/store"
  "github.com/yungbote/lumin-backend/internal/utils"
)

func main() {
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "lumin-secret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 0, log)
  primaryModel := utils.GetEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514", log)
  fallbackModel := utils.GetEnv("ANTHROPIC_FALLBACK_MODEL", "claude-sonnet-4-20250514", log)

  // Store
  storeDriver := utils.GetEnv("STORE_DRIVER", "file", log)
  var lessonStore store.Store
  switch storeDriver {
  case "file":
    dbFile := utils.GetEnv("DB_FILE", "database.json", log)
    lessonStore = store.NewFileStore(dbFile, log)
  default:
    conn, err := db.Open(storeDriver, log)
    if err != nil {
      log.Fatal("Failed to open database", "driver", storeDriver, "error", err)
    }
    gormStore, err := store.NewGormStore(conn, log)
    if err != nil {
      log.Fatal("Failed to init store", "driver", storeDriver, "error", err)
    }
    lessonStore = gormStore
  }

  // Services
  log.Info("Setting up Services from main...")
  aiClient := anthropic.NewClient(anthropic.ConfigFromEnv(log), log)
  if aiClient.Configured() {
    log.Info("Anthropic API key configured")
  } else {
    log.Warn("Anthropic API key missing, add ANTHROPIC_API_KEY to .env")
  }
  authService := services.NewAuthService(log, lessonStore, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
  lessonService := services.NewLessonService(log, lessonStore)
  generationService := services.NewGenerationService(log, lessonStore, aiClient, services.ModelFallback{
    Primary:  primaryModel,
    Fallback: fallbackModel,
  })

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  lessonHandler := handlers.NewLessonHandler(log, lessonService)
  generateHandler := handlers.NewGenerateHandler(log, generationService)

  // Middleware
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:     authHandler,
    AuthMiddleware:  authMiddleware,
    LessonHandler:   lessonHandler,
    GenerateHandler: generateHandler,
    AIClient:        aiClient,
  })

  port := utils.GetEnv("PORT", "3001", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Warn("Server failed", "error", err)
  }
}
