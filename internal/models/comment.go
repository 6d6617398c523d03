package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post. Username is a snapshot of the
// author's name taken when the comment was written; it is intentionally not
// re-synced when the author later renames themselves. Comments are never
// edited, only created and deleted by their author.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PostID    uint           `gorm:"not null;index" json:"post_id"`
	UserID    uint           `gorm:"not null" json:"user_id"`
	Username  string         `gorm:"not null" json:"username"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
