package services

import (
  "context"

  "github.com/yungbote/lumin-backend/internal/logger"
  "github.com/yungbote/lumin-backend/internal/store"
  "github.com/yungbote/lumin-backend/internal/types"
)

type LessonService interface {
  ListLessonsForUser(ctx context.Context, ownerID string) ([]*types.LessonDocument, error)
  DeleteLessonForUser(ctx context.Context, lessonID, ownerID string) error
}

type lessonService struct {
  log   *logger.Logger
  store store.Store
}

func NewLessonService(baseLog *logger.Logger, st store.Store) LessonService {
  return &lessonService{
    log:   baseLog.With("service", "LessonService"),
    store: st,
  }
}

func (ls *lessonService) ListLessonsForUser(ctx context.Context, ownerID string) ([]*types.LessonDocument, error) {
  return ls.store.ListLessons(ctx, ownerID)
}

func (ls *lessonService) DeleteLessonForUser(ctx context.Context, lessonID, ownerID string) error {
  if err := ls.store.DeleteLesson(ctx, lessonID, ownerID); err != nil {
    ls.log.Error("DeleteLessonForUser failed", "lesson_id", lessonID, "owner_id", ownerID, "error", err)
    return err
  }
  return nil
}
