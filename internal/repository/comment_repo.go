package repository

import (
	"context"

	"github.com/ai-blog-api/internal/database"
	"github.com/ai-blog-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment. Comments are never updated after creation.
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, blog_id, author_name, author_email, content, is_bot_generated, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.BlogID, comment.AuthorName, comment.AuthorEmail,
		comment.Content, comment.IsBotGenerated, comment.Status, comment.CreatedAt,
	)
	return err
}

// ListApprovedByBlog retrieves approved comments for a blog, newest first
func (r *commentRepo) ListApprovedByBlog(ctx context.Context, blogID string) ([]*models.Comment, error) {
	query := `
		SELECT id, blog_id, author_name, author_email, content, is_bot_generated, status, created_at
		FROM comments
		WHERE blog_id = $1 AND status = $2
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, blogID, models.CommentStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(
			&c.ID, &c.BlogID, &c.AuthorName, &c.AuthorEmail,
			&c.Content, &c.IsBotGenerated, &c.Status, &c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}

// CountBotGenerated returns the number of machine-authored comments
func (r *commentRepo) CountBotGenerated(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments WHERE is_bot_generated = true").Scan(&count)
	return count, err
}
