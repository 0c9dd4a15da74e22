package model

import "time"

// Comment is a reader's comment on a post. Comments are immutable once
// written; they disappear only when their post (or author) is deleted and
// the cascade takes them along.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	UserID    int64     `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentDetail is a Comment joined with the commenter's username for
// display under a post.
type CommentDetail struct {
	Comment
	Username string `json:"username"`
}
