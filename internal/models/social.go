package models

import (
	"encoding/json"
	"time"
)

// SocialPlatform identifies a target social network
type SocialPlatform string

const (
	PlatformTwitter   SocialPlatform = "twitter"
	PlatformLinkedIn  SocialPlatform = "linkedin"
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformInstagram SocialPlatform = "instagram"
)

// ValidPlatforms defines allowed social platforms
var ValidPlatforms = map[SocialPlatform]bool{
	PlatformTwitter:   true,
	PlatformLinkedIn:  true,
	PlatformFacebook:  true,
	PlatformInstagram: true,
}

// SocialPostStatus represents the publishing state of a social post
type SocialPostStatus string

const (
	SocialPostStatusDraft     SocialPostStatus = "draft"
	SocialPostStatusScheduled SocialPostStatus = "scheduled"
	SocialPostStatusPublished SocialPostStatus = "published"
	SocialPostStatusFailed    SocialPostStatus = "failed"
)

// SocialPost represents generated social media copy for a blog post.
// Re-running generation appends new rows; there is no dedup per platform.
type SocialPost struct {
	ID                string           `json:"id" db:"id"`
	BlogID            string           `json:"blog_id" db:"blog_id"`
	Platform          SocialPlatform   `json:"platform" db:"platform"`
	Content           string           `json:"content" db:"content"`
	Status            SocialPostStatus `json:"status" db:"status"`
	ScheduledAt       *time.Time       `json:"scheduled_at,omitempty" db:"scheduled_at"`
	PublishedAt       *time.Time       `json:"published_at,omitempty" db:"published_at"`
	EngagementMetrics json.RawMessage  `json:"engagement_metrics,omitempty" db:"engagement_metrics"`
	CreatedAt         time.Time        `json:"created_at" db:"created_at"`
}
