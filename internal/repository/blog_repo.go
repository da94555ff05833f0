package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ai-blog-api/internal/database"
	"github.com/ai-blog-api/internal/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const blogColumns = "id, title, content, summary, slug, category, tags, status, author_id, view_count, like_count, created_at, updated_at, published_at"

// blogRepo is the concrete implementation of BlogRepository
type blogRepo struct {
	db *database.DB
}

// NewBlogRepo creates a new blog repository
func NewBlogRepo(db *database.DB) BlogRepository {
	return &blogRepo{db: db}
}

// Create inserts a new blog post
func (r *blogRepo) Create(ctx context.Context, blog *models.Blog) error {
	tagsJSON, _ := json.Marshal(blog.Tags)
	if blog.Tags == nil {
		tagsJSON = []byte("[]")
	}

	query := `
		INSERT INTO blogs (id, title, content, summary, slug, category, tags, status, author_id, view_count, like_count, created_at, updated_at, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		blog.ID, blog.Title, blog.Content, blog.Summary, blog.Slug, blog.Category,
		tagsJSON, blog.Status, blog.AuthorID, blog.ViewCount, blog.LikeCount,
		blog.CreatedAt, time.Now(), blog.PublishedAt,
	)
	return err
}

// GetByID retrieves a blog by ID
func (r *blogRepo) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+blogColumns+" FROM blogs WHERE id = $1", id)
	return scanBlog(row)
}

// GetPublishedBySlug retrieves a published blog by its slug
func (r *blogRepo) GetPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+blogColumns+" FROM blogs WHERE slug = $1 AND status = $2",
		slug, models.BlogStatusPublished,
	)
	return scanBlog(row)
}

// listQuery builds the filtered list statement
func listQuery(filter BlogFilter) sq.SelectBuilder {
	q := psql.Select(blogColumns).From("blogs").OrderBy("created_at DESC")
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	return q
}

// List retrieves blogs matching the filter, newest first
func (r *blogRepo) List(ctx context.Context, filter BlogFilter) ([]*models.Blog, error) {
	query, args, err := listQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []*models.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

// ListRecentPublishedWithCommentCounts retrieves the most recently published
// blogs joined with each one's comment count, for comment-bot targeting
func (r *blogRepo) ListRecentPublishedWithCommentCounts(ctx context.Context, limit int) ([]*models.BlogWithCommentCount, error) {
	query := `
		SELECT b.id, b.title, b.content, b.summary, b.slug, b.category, b.tags, b.status,
		       b.author_id, b.view_count, b.like_count, b.created_at, b.updated_at, b.published_at,
		       COUNT(c.id) AS comment_count
		FROM blogs b
		LEFT JOIN comments c ON c.blog_id = b.id
		WHERE b.status = $1
		GROUP BY b.id
		ORDER BY b.published_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, models.BlogStatusPublished, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []*models.BlogWithCommentCount
	for rows.Next() {
		var b models.BlogWithCommentCount
		var tagsJSON []byte
		var summary sql.NullString
		var publishedAt sql.NullTime

		err := rows.Scan(
			&b.ID, &b.Title, &b.Content, &summary, &b.Slug, &b.Category, &tagsJSON, &b.Status,
			&b.AuthorID, &b.ViewCount, &b.LikeCount, &b.CreatedAt, &b.UpdatedAt, &publishedAt,
			&b.CommentCount,
		)
		if err != nil {
			return nil, err
		}

		json.Unmarshal(tagsJSON, &b.Tags)
		if summary.Valid {
			b.Summary = &summary.String
		}
		if publishedAt.Valid {
			b.PublishedAt = &publishedAt.Time
		}
		blogs = append(blogs, &b)
	}
	return blogs, rows.Err()
}

// UpdateSummary writes the generated summary in a single update
func (r *blogRepo) UpdateSummary(ctx context.Context, id, summary string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE blogs SET summary = $1, updated_at = $2 WHERE id = $3",
		summary, time.Now(), id,
	)
	return err
}

// IncrementViewCount bumps the view counter, reporting whether the row exists
func (r *blogRepo) IncrementViewCount(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "UPDATE blogs SET view_count = view_count + 1 WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// IncrementLikeCount bumps the like counter, reporting whether the row exists
func (r *blogRepo) IncrementLikeCount(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "UPDATE blogs SET like_count = like_count + 1 WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Exists checks if a blog with the given ID exists
func (r *blogRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM blogs WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// Count returns the number of blogs matching the filter
func (r *blogRepo) Count(ctx context.Context, filter BlogFilter) (int, error) {
	q := psql.Select("COUNT(*)").From("blogs")
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// CountCreatedSince returns the number of blogs created at or after the cutoff
func (r *blogRepo) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM blogs WHERE created_at >= $1", since).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlog(row rowScanner) (*models.Blog, error) {
	var blog models.Blog
	var tagsJSON []byte
	var summary sql.NullString
	var publishedAt sql.NullTime

	err := row.Scan(
		&blog.ID, &blog.Title, &blog.Content, &summary, &blog.Slug, &blog.Category,
		&tagsJSON, &blog.Status, &blog.AuthorID, &blog.ViewCount, &blog.LikeCount,
		&blog.CreatedAt, &blog.UpdatedAt, &publishedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal(tagsJSON, &blog.Tags)
	if summary.Valid {
		blog.Summary = &summary.String
	}
	if publishedAt.Valid {
		blog.PublishedAt = &publishedAt.Time
	}

	return &blog, nil
}
