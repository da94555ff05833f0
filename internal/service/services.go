package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ai-blog-api/internal/completion"
	"github.com/ai-blog-api/internal/config"
	"github.com/ai-blog-api/internal/models"
	"github.com/ai-blog-api/internal/repository"
)

// Completer issues one completion call. Satisfied by *completion.Client.
type Completer interface {
	Complete(ctx context.Context, req completion.Request) (string, error)
}

// CompleterFactory builds a Completer for the API key read from system
// configuration at invocation time
type CompleterFactory func(apiKey string) Completer

// GeneratorService defines the four content generation pipelines. Each call
// is one-shot: flag check, completion call, persistence, no retries.
type GeneratorService interface {
	GeneratePost(ctx context.Context) (*models.Blog, error)
	GenerateComment(ctx context.Context) (*models.Comment, error)
	SummarizeBlog(ctx context.Context, blogID string) (string, error)
	GenerateSocialPosts(ctx context.Context, blogID string) ([]*models.SocialPost, error)
}

// BlogService defines the read-side operations the reader views consume
type BlogService interface {
	ListBlogs(ctx context.Context, filter repository.BlogFilter) ([]*models.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)
	LikeBlog(ctx context.Context, id string) error
	ListComments(ctx context.Context, blogID string) ([]*models.Comment, error)
	SubmitComment(ctx context.Context, blogID string, sub *models.CommentSubmission) (*models.Comment, error)
	ListSocialPosts(ctx context.Context, blogID string) ([]*models.SocialPost, error)
}

// AdminService defines the operations behind the admin dashboard
type AdminService interface {
	ListConfigs(ctx context.Context) ([]*models.SystemConfig, error)
	UpdateConfig(ctx context.Context, key, value string) (*models.SystemConfig, error)
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

// AutomationService runs the interval-driven generation loop
type AutomationService interface {
	StartProcessor(ctx context.Context)
	StopProcessor()
}

// Services holds all service interfaces
type Services struct {
	Generator  GeneratorService
	Blog       BlogService
	Admin      AdminService
	Automation AutomationService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, completerFor CompleterFactory, cfg *config.Config, log zerolog.Logger) *Services {
	generator := newGeneratorService(repos, completerFor, log)

	return &Services{
		Generator:  generator,
		Blog:       newBlogService(repos, log),
		Admin:      newAdminService(repos, log),
		Automation: newAutomationService(generator, repos.Config, cfg.Automation.TickInterval, log),
	}
}
