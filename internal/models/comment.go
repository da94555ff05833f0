package models

import (
	"time"
)

// CommentStatus represents the moderation state of a comment
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusRejected CommentStatus = "rejected"
)

// Comment represents a comment on a blog post
type Comment struct {
	ID             string        `json:"id" db:"id"`
	BlogID         string        `json:"blog_id" db:"blog_id"`
	AuthorName     string        `json:"author_name" db:"author_name"`
	AuthorEmail    *string       `json:"author_email,omitempty" db:"author_email"`
	Content        string        `json:"content" db:"content"`
	IsBotGenerated bool          `json:"is_bot_generated" db:"is_bot_generated"`
	Status         CommentStatus `json:"status" db:"status"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
}

// CommentSubmission is the payload for a reader-submitted comment
type CommentSubmission struct {
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email,omitempty"`
	Content     string `json:"content"`
}

// MaxCommentWords is the maximum allowed words in a comment body
const MaxCommentWords = 500
