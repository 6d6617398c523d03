package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a post in the Glimpse application. The author reference is
// immutable after creation; (UserID, Title) is kept unique per author by the
// service layer. Likes are an insertion-ordered set (one row per user) and
// Comments an append-ordered sequence.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Caption   string         `gorm:"type:text;not null" json:"caption"`
	Image     string         `json:"image"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Likes     []Like         `gorm:"foreignKey:PostID" json:"likes"`
	Comments  []Comment      `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
