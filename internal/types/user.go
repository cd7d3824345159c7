package types

import (
  "time"
  "github.com/google/uuid"
)

type User struct {
  ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  Username      string      `gorm:"uniqueIndex;not null;column:username" json:"username"`
  PasswordHash  string      `gorm:"not null;column:password_hash" json:"passwordHash"`
  CreatedAt     time.Time   `gorm:"not null" json:"createdAt"`
}

func (User) TableName() string {
  return "user"
}
