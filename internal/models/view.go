package models

import "time"

// UserSummary is the display-ready form of a user reference.
type UserSummary struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// CommentView is a comment with its author reference expanded. User is nil
// when the referenced account no longer exists; Username keeps the snapshot
// taken when the comment was written.
type CommentView struct {
	ID        uint         `json:"id"`
	User      *UserSummary `json:"user"`
	Username  string       `json:"username"`
	Text      string       `json:"text"`
	CreatedAt time.Time    `json:"created_at"`
}

// PostView is a post with every user reference expanded into an inline
// summary. It is built read-only from stored rows; projection never mutates
// the underlying post.
type PostView struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	Caption   string        `json:"caption"`
	Image     string        `json:"image"`
	User      *UserSummary  `json:"user"`
	Likes     []UserSummary `json:"likes"`
	Comments  []CommentView `json:"comments"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
