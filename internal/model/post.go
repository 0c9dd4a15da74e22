package model

import "time"

// Post represents a blog post as stored.
//
// ImagePath is the location of the copy inside the managed image directory,
// not the path the author originally picked in the file dialog. Empty means
// the post has no image.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	ImagePath string    `json:"imagePath,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostDetail is a Post joined with its author, as the browse and detail
// pages render it. Produced by queries that JOIN users, never stored.
type PostDetail struct {
	Post
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// CategoryGroup is one node of the category tree page: a category label and
// its posts, newest first.
type CategoryGroup struct {
	Category string       `json:"category"`
	Posts    []PostDetail `json:"posts"`
}
