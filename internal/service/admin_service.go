package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ai-blog-api/internal/models"
	"github.com/ai-blog-api/internal/repository"
)

// adminService is the concrete implementation of AdminService
type adminService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newAdminService creates a new AdminService
func newAdminService(repos *repository.Repositories, log zerolog.Logger) *adminService {
	return &adminService{
		repos: repos,
		log:   log.With().Str("service", "admin").Logger(),
	}
}

// ListConfigs retrieves all configuration flags ordered by key
func (s *adminService) ListConfigs(ctx context.Context) ([]*models.SystemConfig, error) {
	return s.repos.Config.List(ctx)
}

// UpdateConfig writes a configuration value. Last write wins.
func (s *adminService) UpdateConfig(ctx context.Context, key, value string) (*models.SystemConfig, error) {
	cfg, err := s.repos.Config.Upsert(ctx, key, value)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("key", key).Msg("Configuration updated")
	return cfg, nil
}

// Stats collects the aggregate counters for the admin dashboard
func (s *adminService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	var err error

	if stats.TotalBlogs, err = s.repos.Blog.Count(ctx, repository.BlogFilter{}); err != nil {
		return nil, err
	}
	if stats.PublishedBlogs, err = s.repos.Blog.Count(ctx, repository.BlogFilter{Status: models.BlogStatusPublished}); err != nil {
		return nil, err
	}
	if stats.DraftBlogs, err = s.repos.Blog.Count(ctx, repository.BlogFilter{Status: models.BlogStatusDraft}); err != nil {
		return nil, err
	}
	if stats.TotalComments, err = s.repos.Comment.Count(ctx); err != nil {
		return nil, err
	}
	if stats.BotComments, err = s.repos.Comment.CountBotGenerated(ctx); err != nil {
		return nil, err
	}
	if stats.SocialPosts, err = s.repos.Social.Count(ctx); err != nil {
		return nil, err
	}

	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	if stats.BlogsToday, err = s.repos.Blog.CountCreatedSince(ctx, midnight); err != nil {
		return nil, err
	}

	return stats, nil
}
