package models

import "time"

// Like represents a user's like on a post. The (UserID, PostID) pair is
// unique, which is what makes the post's liker list a set. Rows are
// hard-deleted on unlike so a later re-like simply re-inserts.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
