package models

import (
	"time"
)

// BlogStatus represents the lifecycle state of a blog post
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
	BlogStatusArchived  BlogStatus = "archived"
)

// ValidBlogStatuses defines allowed blog statuses
var ValidBlogStatuses = map[BlogStatus]bool{
	BlogStatusDraft:     true,
	BlogStatusPublished: true,
	BlogStatusArchived:  true,
}

// Blog represents a blog post in the system
type Blog struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	Summary     *string    `json:"summary,omitempty" db:"summary"`
	Slug        string     `json:"slug" db:"slug"`
	Category    string     `json:"category" db:"category"`
	Tags        []string   `json:"tags" db:"-"` // Stored as JSONB in DB
	Status      BlogStatus `json:"status" db:"status"`
	AuthorID    string     `json:"author_id" db:"author_id"`
	ViewCount   int        `json:"view_count" db:"view_count"`
	LikeCount   int        `json:"like_count" db:"like_count"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
}

// HasSummary reports whether a summary has already been written
func (b *Blog) HasSummary() bool {
	return b.Summary != nil && *b.Summary != ""
}

// BlogWithCommentCount is a blog row joined with its comment count,
// used by the comment bot to find under-commented posts
type BlogWithCommentCount struct {
	Blog
	CommentCount int `json:"comment_count" db:"comment_count"`
}

// DashboardStats holds the aggregate counters shown on the admin dashboard
type DashboardStats struct {
	TotalBlogs     int `json:"total_blogs"`
	PublishedBlogs int `json:"published_blogs"`
	DraftBlogs     int `json:"draft_blogs"`
	TotalComments  int `json:"total_comments"`
	BotComments    int `json:"bot_comments"`
	SocialPosts    int `json:"social_posts"`
	BlogsToday     int `json:"blogs_today"`
}
