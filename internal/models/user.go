// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account in the Glimpse application.
// Username and email are globally unique; Password holds the bcrypt hash and
// is never serialized.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Username       string         `gorm:"unique;not null" json:"username"`
	Email          string         `gorm:"unique;not null" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	ProfilePicture string         `json:"profilePicture"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Posts          []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// Summary returns the display-ready projection of the user.
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:             u.ID,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
	}
}
