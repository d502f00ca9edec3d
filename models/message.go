package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is immutable once written.
type Message struct {
	gorm.Model
	ConversationID uint      `gorm:"index;not null"`
	Content        string    `gorm:"type:text;not null"`
	IsUser         bool      `gorm:"not null"` // true for user turns, false for AI turns
	Timestamp      time.Time `gorm:"index;not null"`
}
