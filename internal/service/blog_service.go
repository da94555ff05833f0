package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ai-blog-api/internal/models"
	"github.com/ai-blog-api/internal/repository"
)

// blogService is the concrete implementation of BlogService
type blogService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newBlogService creates a new BlogService
func newBlogService(repos *repository.Repositories, log zerolog.Logger) *blogService {
	return &blogService{
		repos: repos,
		log:   log.With().Str("service", "blog").Logger(),
	}
}

// ListBlogs retrieves blogs matching the filter, newest first
func (s *blogService) ListBlogs(ctx context.Context, filter repository.BlogFilter) ([]*models.Blog, error) {
	return s.repos.Blog.List(ctx, filter)
}

// GetBySlug retrieves a published blog and bumps its view counter. A failed
// counter update is logged but does not fail the read.
func (s *blogService) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	blog, err := s.repos.Blog.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, fmt.Errorf("blog %q: %w", slug, ErrNotFound)
	}

	if _, err := s.repos.Blog.IncrementViewCount(ctx, blog.ID); err != nil {
		s.log.Warn().Err(err).Str("blog_id", blog.ID).Msg("Failed to increment view count")
	} else {
		blog.ViewCount++
	}

	return blog, nil
}

// LikeBlog bumps the like counter
func (s *blogService) LikeBlog(ctx context.Context, id string) error {
	found, err := s.repos.Blog.IncrementLikeCount(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("blog %q: %w", id, ErrNotFound)
	}
	return nil
}

// ListComments retrieves the approved comments for a blog, newest first
func (s *blogService) ListComments(ctx context.Context, blogID string) ([]*models.Comment, error) {
	exists, err := s.repos.Blog.Exists(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("blog %q: %w", blogID, ErrNotFound)
	}

	return s.repos.Comment.ListApprovedByBlog(ctx, blogID)
}

// SubmitComment stores a reader comment. Reader comments are auto-approved.
func (s *blogService) SubmitComment(ctx context.Context, blogID string, sub *models.CommentSubmission) (*models.Comment, error) {
	exists, err := s.repos.Blog.Exists(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("blog %q: %w", blogID, ErrNotFound)
	}

	comment := &models.Comment{
		ID:             uuid.NewString(),
		BlogID:         blogID,
		AuthorName:     sub.AuthorName,
		Content:        sub.Content,
		IsBotGenerated: false,
		Status:         models.CommentStatusApproved,
		CreatedAt:      time.Now(),
	}
	if sub.AuthorEmail != "" {
		comment.AuthorEmail = &sub.AuthorEmail
	}

	if err := s.repos.Comment.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListSocialPosts retrieves all social posts generated for a blog
func (s *blogService) ListSocialPosts(ctx context.Context, blogID string) ([]*models.SocialPost, error) {
	exists, err := s.repos.Blog.Exists(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("blog %q: %w", blogID, ErrNotFound)
	}

	return s.repos.Social.ListByBlog(ctx, blogID)
}
