package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/yungbote/lumin-backend/internal/clients/anthropic"
)

// HealthCheck reports liveness plus whether the generation provider has a key.
func HealthCheck(ai anthropic.Client) gin.HandlerFunc {
  return func(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"status": "ok", "anthropic": ai.Configured()})
  }
}
