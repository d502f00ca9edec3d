package models

import (
	"time"

	"gorm.io/gorm"
)

// Conversation groups a user's messages. EndTime stays NULL while the
// conversation is active; no code path closes one yet, the column exists so a
// closing trigger can land without a schema change.
type Conversation struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index"`
	StartTime time.Time `gorm:"index;not null"`
	EndTime   *time.Time
	Messages  []Message `gorm:"constraint:OnDelete:CASCADE"`
}
