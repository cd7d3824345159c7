package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
)

// Error responses are a flat {"error": "..."} object; the front end surfaces
// the message directly.
func RespondError(c *gin.Context, status int, err error) {
  msg := "unknown error"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(status, gin.H{"error": msg})
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}
