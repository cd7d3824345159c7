package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/yungbote/lumin-backend/internal/logger"
  "github.com/yungbote/lumin-backend/internal/requestdata"
  "github.com/yungbote/lumin-backend/internal/services"
)

type LessonHandler struct {
  log           *logger.Logger
  lessonService services.LessonService
}

func NewLessonHandler(log *logger.Logger, lessonService services.LessonService) *LessonHandler {
  return &LessonHandler{
    log:           log.With("handler", "LessonHandler"),
    lessonService: lessonService,
  }
}

// GET /api/lessons
func (h *LessonHandler) ListUserLessons(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, nil)
    return
  }
  lessons, err := h.lessonService.ListLessonsForUser(c.Request.Context(), rd.UserID.String())
  if err != nil {
    h.log.Error("ListUserLessons failed", "error", err, "user_id", rd.UserID)
    RespondError(c, http.StatusInternalServerError, err)
    return
  }
  RespondOK(c, lessons)
}

// DELETE /api/lessons/:id
// Succeeds whether or not anything matched; foreign-owned ids are never touched.
func (h *LessonHandler) DeleteUserLesson(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, nil)
    return
  }
  if err := h.lessonService.DeleteLessonForUser(c.Request.Context(), c.Param("id"), rd.UserID.String()); err != nil {
    RespondError(c, http.StatusInternalServerError, err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}
