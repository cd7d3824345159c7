package store

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "time"

  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/yungbote/lumin-backend/internal/logger"
  "github.com/yungbote/lumin-backend/internal/types"
)

// LessonRow is the relational shape of a lesson document. The document itself
// stays a JSON blob so the wire contract in types.LessonDocument remains the
// single source of truth for its layout.
type LessonRow struct {
  ID        string          `gorm:"primaryKey;column:id"`
  OwnerID   string          `gorm:"index;not null;column:owner_id"`
  Topic     string          `gorm:"column:topic"`
  CreatedAt time.Time       `gorm:"not null"`
  Document  datatypes.JSON  `gorm:"column:document"`
}

func (LessonRow) TableName() string {
  return "lesson"
}

type GormStore struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewGormStore(db *gorm.DB, baseLog *logger.Logger) (*GormStore, error) {
  if err := db.AutoMigrate(&types.User{}, &LessonRow{}); err != nil {
    return nil, fmt.Errorf("auto migrate: %w", err)
  }
  return &GormStore{db: db, log: baseLog.With("store", "GormStore")}, nil
}

func (gs *GormStore) CreateUser(ctx context.Context, user *types.User) error {
  var count int64
  if err := gs.db.WithContext(ctx).Model(&types.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
    return fmt.Errorf("check username: %w", err)
  }
  if count > 0 {
    return ErrUserExists
  }
  if err := gs.db.WithContext(ctx).Create(user).Error; err != nil {
    return fmt.Errorf("create user: %w", err)
  }
  return nil
}

func (gs *GormStore) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
  var user types.User
  err := gs.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, ErrUserNotFound
  }
  if err != nil {
    return nil, fmt.Errorf("load user: %w", err)
  }
  return &user, nil
}

func (gs *GormStore) PutLesson(ctx context.Context, lesson *types.LessonDocument) error {
  raw, err := json.Marshal(lesson)
  if err != nil {
    return fmt.Errorf("encode lesson document: %w", err)
  }
  row := LessonRow{
    ID:        lesson.ID,
    OwnerID:   lesson.OwnerID,
    Topic:     lesson.Topic,
    CreatedAt: lesson.Created,
    Document:  datatypes.JSON(raw),
  }
  if err := gs.db.WithContext(ctx).Create(&row).Error; err != nil {
    return fmt.Errorf("create lesson: %w", err)
  }
  return nil
}

func (gs *GormStore) ListLessons(ctx context.Context, ownerID string) ([]*types.LessonDocument, error) {
  var rows []LessonRow
  if err := gs.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&rows).Error; err != nil {
    return nil, fmt.Errorf("list lessons: %w", err)
  }
  lessons := []*types.LessonDocument{}
  for _, row := range rows {
    var doc types.LessonDocument
    if err := json.Unmarshal(row.Document, &doc); err != nil {
      gs.log.Warn("Skipping undecodable lesson row", "lesson_id", row.ID, "error", err)
      continue
    }
    lessons = append(lessons, &doc)
  }
  return lessons, nil
}

func (gs *GormStore) DeleteLesson(ctx context.Context, id, ownerID string) error {
  // Foreign or missing ids delete zero rows, which is the intended no-op.
  if err := gs.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&LessonRow{}).Error; err != nil {
    return fmt.Errorf("delete lesson: %w", err)
  }
  return nil
}
