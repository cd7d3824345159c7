package store

import (
  "context"
  "encoding/json"
  "fmt"
  "os"
  "path/filepath"
  "sync"

  "github.com/yungbote/lumin-backend/internal/logger"
  "github.com/yungbote/lumin-backend/internal/types"
)

// fileDatabase is the on-disk layout: one JSON object holding every user and
// every lesson, rewritten in full on each mutation.
type fileDatabase struct {
  Users   []*types.User           `json:"users"`
  Lessons []*types.LessonDocument `json:"lessons"`
}

type FileStore struct {
  mu   sync.Mutex
  path string
  log  *logger.Logger
}

func NewFileStore(path string, baseLog *logger.Logger) *FileStore {
  return &FileStore{
    path: path,
    log:  baseLog.With("store", "FileStore"),
  }
}

func (fs *FileStore) load() (*fileDatabase, error) {
  raw, err := os.ReadFile(fs.path)
  if os.IsNotExist(err) {
    return &fileDatabase{Users: []*types.User{}, Lessons: []*types.LessonDocument{}}, nil
  }
  if err != nil {
    return nil, fmt.Errorf("read database file: %w", err)
  }
  var db fileDatabase
  if err := json.Unmarshal(raw, &db); err != nil {
    return nil, fmt.Errorf("decode database file: %w", err)
  }
  return &db, nil
}

// save rewrites the whole file. Write-to-temp plus rename so a crash mid-write
// never leaves a truncated database behind.
func (fs *FileStore) save(db *fileDatabase) error {
  raw, err := json.MarshalIndent(db, "", "  ")
  if err != nil {
    return fmt.Errorf("encode database: %w", err)
  }
  dir := filepath.Dir(fs.path)
  tmp, err := os.CreateTemp(dir, ".lumin-db-*")
  if err != nil {
    return fmt.Errorf("create temp database file: %w", err)
  }
  tmpName := tmp.Name()
  if _, err := tmp.Write(raw); err != nil {
    tmp.Close()
    os.Remove(tmpName)
    return fmt.Errorf("write temp database file: %w", err)
  }
  if err := tmp.Close(); err != nil {
    os.Remove(tmpName)
    return fmt.Errorf("close temp database file: %w", err)
  }
  if err := os.Rename(tmpName, fs.path); err != nil {
    os.Remove(tmpName)
    return fmt.Errorf("replace database file: %w", err)
  }
  return nil
}

func (fs *FileStore) CreateUser(ctx context.Context, user *types.User) error {
  fs.mu.Lock()
  defer fs.mu.Unlock()
  db, err := fs.load()
  if err != nil {
    return err
  }
  for _, u := range db.Users {
    if u.Username == user.Username {
      return ErrUserExists
    }
  }
  db.Users = append(db.Users, user)
  return fs.save(db)
}

func (fs *FileStore) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
  fs.mu.Lock()
  defer fs.mu.Unlock()
  db, err := fs.load()
  if err != nil {
    return nil, err
  }
  for _, u := range db.Users {
    if u.Username == username {
      return u, nil
    }
  }
  return nil, ErrUserNotFound
}

func (fs *FileStore) PutLesson(ctx context.Context, lesson *types.LessonDocument) error {
  fs.mu.Lock()
  defer fs.mu.Unlock()
  db, err := fs.load()
  if err != nil {
    return err
  }
  db.Lessons = append(db.Lessons, lesson)
  return fs.save(db)
}

func (fs *FileStore) ListLessons(ctx context.Context, ownerID string) ([]*types.LessonDocument, error) {
  fs.mu.Lock()
  defer fs.mu.Unlock()
  db, err := fs.load()
  if err != nil {
    return nil, err
  }
  owned := []*types.LessonDocument{}
  for _, l := range db.Lessons {
    if l.OwnerID == ownerID {
      owned = append(owned, l)
    }
  }
  return owned, nil
}

func (fs *FileStore) DeleteLesson(ctx context.Context, id, ownerID string) error {
  fs.mu.Lock()
  defer fs.mu.Unlock()
  db, err := fs.load()
  if err != nil {
    return err
  }
  kept := db.Lessons[:0]
  removed := false
  for _, l := range db.Lessons {
    if l.ID == id && l.OwnerID == ownerID {
      removed = true
      continue
    }
    kept = append(kept, l)
  }
  if !removed {
    return nil
  }
  db.Lessons = kept
  return fs.save(db)
}
