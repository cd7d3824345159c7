package db

import (
  "fmt"

  "gorm.io/driver/postgres"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/yungbote/lumin-backend/internal/logger"
  "github.com/yungbote/lumin-backend/internal/utils"
)

// Open connects the requested gorm dialector. Used when STORE_DRIVER selects a
// relational store instead of the flat-file default.
func Open(driver string, log *logger.Logger) (*gorm.DB, error) {
  switch driver {
  case "sqlite":
    path := utils.GetEnv("SQLITE_PATH", "lumin.db", log)
    log.Info("Connecting to SQLite...", "path", path)
    conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
    if err != nil {
      return nil, fmt.Errorf("Failed to open SQLite database: %w", err)
    }
    return conn, nil
  case "postgres":
    host := utils.GetEnv("POSTGRES_HOST", "localhost", log)
    port := utils.GetEnv("POSTGRES_PORT", "5432", log)
    user := utils.GetEnv("POSTGRES_USER", "postgres", log)
    password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
    name := utils.GetEnv("POSTGRES_NAME", "lumin", log)
    dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
    log.Info("Connecting to Postgres...")
    conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
    if err != nil {
      return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
    }
    return conn, nil
  default:
    return nil, fmt.Errorf("unknown store driver %q", driver)
  }
}
