package store

import (
  "context"
  "errors"

  "github.com/yungbote/lumin-backend/internal/types"
)

var (
  ErrUserExists   = errors.New("username already taken")
  ErrUserNotFound = errors.New("user not found")
)

// Store is the persistence contract for users and lesson documents. Lesson
// reads and deletes are always owner-scoped; deleting a missing or
// foreign-owned lesson is a silent no-op.
type Store interface {
  CreateUser(ctx context.Context, user *types.User) error
  GetUserByUsername(ctx context.Context, username string) (*types.User, error)

  PutLesson(ctx context.Context, lesson *types.LessonDocument) error
  ListLessons(ctx context.Context, ownerID string) ([]*types.LessonDocument, error)
  DeleteLesson(ctx context.Context, id, ownerID string) error
}
