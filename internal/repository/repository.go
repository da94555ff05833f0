package repository

import (
	"context"
	"time"

	"github.com/ai-blog-api/internal/database"
	"github.com/ai-blog-api/internal/models"
)

// BlogFilter describes the equality/ordering filters for blog queries
type BlogFilter struct {
	Status   models.BlogStatus
	Category string
	Limit    int
}

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error)
	List(ctx context.Context, filter BlogFilter) ([]*models.Blog, error)
	ListRecentPublishedWithCommentCounts(ctx context.Context, limit int) ([]*models.BlogWithCommentCount, error)
	UpdateSummary(ctx context.Context, id, summary string) error
	IncrementViewCount(ctx context.Context, id string) (bool, error)
	IncrementLikeCount(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, filter BlogFilter) (int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListApprovedByBlog(ctx context.Context, blogID string) ([]*models.Comment, error)
	Count(ctx context.Context) (int, error)
	CountBotGenerated(ctx context.Context) (int, error)
}

// SocialPostRepository defines the interface for social post data operations
type SocialPostRepository interface {
	Create(ctx context.Context, post *models.SocialPost) error
	ListByBlog(ctx context.Context, blogID string) ([]*models.SocialPost, error)
	Count(ctx context.Context) (int, error)
}

// ConfigRepository defines the interface for system configuration flags.
// Get returns nil (not an error) when the key is absent.
type ConfigRepository interface {
	Get(ctx context.Context, key string) (*models.SystemConfig, error)
	List(ctx context.Context) ([]*models.SystemConfig, error)
	Upsert(ctx context.Context, key, value string) (*models.SystemConfig, error)
}

// UserRepository defines the interface for author accounts
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Blog    BlogRepository
	Comment CommentRepository
	Social  SocialPostRepository
	Config  ConfigRepository
	User    UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Blog:    NewBlogRepo(db),
		Comment: NewCommentRepo(db),
		Social:  NewSocialPostRepo(db),
		Config:  NewConfigRepo(db),
		User:    NewUserRepo(db),
	}
}
