package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username       string `gorm:"uniqueIndex;size:80;not null"`
	Email          string `gorm:"uniqueIndex;size:120;not null"`
	PasswordHash   string `gorm:"size:255;not null"`
	TotalUsageTime int    `gorm:"not null;default:0"` // cumulative seconds reported by the client

	Conversations []Conversation `gorm:"constraint:OnDelete:CASCADE"`
}

func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
