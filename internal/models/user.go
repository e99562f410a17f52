package models

import "time"

// User represents application user. Users are never hard-deleted.
type User struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Name         string    `gorm:"size:64;not null"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	AvatarURL    string    `gorm:"size:512"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
