package store

import (
  "context"
  "path/filepath"
  "testing"
  "time"

  "github.com/google/uuid"
  "github.com/stretchr/testify/require"

  "github.com/yungbote/lumin-backend/internal/logger"
  "github.com/yungbote/lumin-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("development")
  require.NoError(t, err)
  return log
}

func testLesson(owner string) *types.LessonDocument {
  return &types.LessonDocument{
    ID:      uuid.New().String(),
    OwnerID: owner,
    Topic:   "Recursion",
    Created: time.Now().UTC(),
    Sections: []types.Section{
      {Type: types.SectionText, Title: "Introduction", Content: "..."},
    },
  }
}

func TestFileStoreUsers(t *testing.T) {
  ctx := context.Background()
  fs := NewFileStore(filepath.Join(t.TempDir(), "database.json"), testLogger(t))

  alice := &types.User{ID: uuid.New(), Username: "alice", PasswordHash: "h1", CreatedAt: time.Now()}
  require.NoError(t, fs.CreateUser(ctx, alice))

  dup := &types.User{ID: uuid.New(), Username: "alice", PasswordHash: "h2"}
  require.ErrorIs(t, fs.CreateUser(ctx, dup), ErrUserExists)

  got, err := fs.GetUserByUsername(ctx, "alice")
  require.NoError(t, err)
  require.Equal(t, alice.ID, got.ID)

  _, err = fs.GetUserByUsername(ctx, "bob")
  require.ErrorIs(t, err, ErrUserNotFound)
}

func TestFileStoreLessonOwnerScoping(t *testing.T) {
  ctx := context.Background()
  fs := NewFileStore(filepath.Join(t.TempDir(), "database.json"), testLogger(t))

  aliceID := uuid.New().String()
  bobID := uuid.New().String()
  aliceLesson := testLesson(aliceID)
  bobLesson := testLesson(bobID)
  require.NoError(t, fs.PutLesson(ctx, aliceLesson))
  require.NoError(t, fs.PutLesson(ctx, bobLesson))

  forAlice, err := fs.ListLessons(ctx, aliceID)
  require.NoError(t, err)
  require.Len(t, forAlice, 1)
  require.Equal(t, aliceLesson.ID, forAlice[0].ID)
  for _, l := range forAlice {
    require.Equal(t, aliceID, l.OwnerID)
  }
}

func TestFileStoreDeleteIsSilentNoOp(t *testing.T) {
  ctx := context.Background()
  fs := NewFileStore(filepath.Join(t.TempDir(), "database.json"), testLogger(t))

  ownerID := uuid.New().String()
  lesson := testLesson(ownerID)
  require.NoError(t, fs.PutLesson(ctx, lesson))

  // Nonexistent id: no error, store unchanged.
  require.NoError(t, fs.DeleteLesson(ctx, "no-such-id", ownerID))
  // Foreign owner: no error, store unchanged.
  require.NoError(t, fs.DeleteLesson(ctx, lesson.ID, uuid.New().String()))

  remaining, err := fs.ListLessons(ctx, ownerID)
  require.NoError(t, err)
  require.Len(t, remaining, 1)

  // Matching id+owner actually removes.
  require.NoError(t, fs.DeleteLesson(ctx, lesson.ID, ownerID))
  remaining, err = fs.ListLessons(ctx, ownerID)
  require.NoError(t, err)
  require.Empty(t, remaining)
}

func TestFileStoreDurableAcrossReopen(t *testing.T) {
  ctx := context.Background()
  path := filepath.Join(t.TempDir(), "database.json")
  log := testLogger(t)

  fs := NewFileStore(path, log)
  ownerID := uuid.New().String()
  lesson := testLesson(ownerID)
  require.NoError(t, fs.PutLesson(ctx, lesson))

  reopened := NewFileStore(path, log)
  got, err := reopened.ListLessons(ctx, ownerID)
  require.NoError(t, err)
  require.Len(t, got, 1)
  require.Equal(t, lesson.ID, got[0].ID)
  require.Equal(t, lesson.Topic, got[0].Topic)
}
