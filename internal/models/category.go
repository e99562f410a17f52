package models

import "time"

// Category represents a per-user transaction category.
// NormalizedName is the lowercased/trimmed form used for uniqueness; the
// compound index covers active and soft-deleted rows alike, so a name can
// never be reused while an inactive category still holds it.
type Category struct {
	ID             string `gorm:"primaryKey;size:36"`
	UserEmail      string `gorm:"size:255;not null;uniqueIndex:idx_user_normalized_name"`
	Name           string `gorm:"size:64;not null"`
	NormalizedName string `gorm:"size:64;not null;uniqueIndex:idx_user_normalized_name"`
	IsDefault      bool   `gorm:"not null;default:false"`
	Active         bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
