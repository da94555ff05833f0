package repository

import (
	"context"
	"database/sql"

	"github.com/ai-blog-api/internal/database"
	"github.com/ai-blog-api/internal/models"
)

// socialPostRepo is the concrete implementation of SocialPostRepository
type socialPostRepo struct {
	db *database.DB
}

// NewSocialPostRepo creates a new social post repository
func NewSocialPostRepo(db *database.DB) SocialPostRepository {
	return &socialPostRepo{db: db}
}

// Create inserts a new social post row
func (r *socialPostRepo) Create(ctx context.Context, post *models.SocialPost) error {
	metrics := post.EngagementMetrics
	if len(metrics) == 0 {
		metrics = []byte("{}")
	}

	query := `
		INSERT INTO social_media_posts (id, blog_id, platform, content, status, scheduled_at, published_at, engagement_metrics, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.BlogID, post.Platform, post.Content, post.Status,
		post.ScheduledAt, post.PublishedAt, []byte(metrics), post.CreatedAt,
	)
	return err
}

// ListByBlog retrieves all social posts for a blog
func (r *socialPostRepo) ListByBlog(ctx context.Context, blogID string) ([]*models.SocialPost, error) {
	query := `
		SELECT id, blog_id, platform, content, status, scheduled_at, published_at, engagement_metrics, created_at
		FROM social_media_posts
		WHERE blog_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.SocialPost
	for rows.Next() {
		var p models.SocialPost
		var metrics []byte
		var scheduledAt, publishedAt sql.NullTime
		err := rows.Scan(
			&p.ID, &p.BlogID, &p.Platform, &p.Content, &p.Status,
			&scheduledAt, &publishedAt, &metrics, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if scheduledAt.Valid {
			p.ScheduledAt = &scheduledAt.Time
		}
		if publishedAt.Valid {
			p.PublishedAt = &publishedAt.Time
		}
		p.EngagementMetrics = metrics
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

// Count returns the total number of social posts
func (r *socialPostRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM social_media_posts").Scan(&count)
	return count, err
}
