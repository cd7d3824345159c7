package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/yungbote/lumin-backend/internal/logger"
  "github.com/yungbote/lumin-backend/internal/requestdata"
  "github.com/yungbote/lumin-backend/internal/services"
)

type GenerateHandler struct {
  log               *logger.Logger
  generationService services.GenerationService
}

func NewGenerateHandler(log *logger.Logger, generationService services.GenerationService) *GenerateHandler {
  return &GenerateHandler{
    log:               log.With("handler", "GenerateHandler"),
    generationService: generationService,
  }
}

type generateRequest struct {
  Topic      string `json:"topic" binding:"required"`
  Difficulty string `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
  Duration   string `json:"duration"`
}

// POST /api/generate
func (h *GenerateHandler) Generate(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, nil)
    return
  }
  var req generateRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, err)
    return
  }
  lesson, err := h.generationService.Generate(c.Request.Context(), rd.UserID, services.GenerateRequest{
    Topic:      req.Topic,
    Difficulty: req.Difficulty,
    Duration:   req.Duration,
  })
  if err != nil {
    h.log.Error("Generate failed", "topic", req.Topic, "user_id", rd.UserID, "error", err)
    RespondError(c, http.StatusInternalServerError, err)
    return
  }
  RespondOK(c, lesson)
}
