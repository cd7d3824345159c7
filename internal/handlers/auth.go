package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/yungbote/lumin-backend/internal/services"
  "github.com/yungbote/lumin-backend/internal/store"
)

type AuthHandler struct {
  authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
  return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
  Username string `json:"username"`
  Password string `json:"password"`
}

func (ah *AuthHandler) Register(c *gin.Context) {
  var req credentialsRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  token, err := ah.authService.RegisterUser(c.Request.Context(), req.Username, req.Password)
  if err != nil {
    status := http.StatusInternalServerError
    if errors.Is(err, services.ErrMissingFields) || errors.Is(err, store.ErrUserExists) {
      status = http.StatusBadRequest
    }
    RespondError(c, status, err)
    return
  }
  RespondOK(c, gin.H{"token": token, "username": req.Username})
}

func (ah *AuthHandler) Login(c *gin.Context) {
  var req credentialsRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  token, err := ah.authService.LoginUser(c.Request.Context(), req.Username, req.Password)
  if err != nil {
    status := http.StatusInternalServerError
    if errors.Is(err, services.ErrInvalidCredentials) {
      status = http.StatusUnauthorized
    }
    RespondError(c, status, err)
    return
  }
  RespondOK(c, gin.H{"token": token, "username": req.Username})
}
