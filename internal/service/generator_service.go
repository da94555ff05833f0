package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ai-blog-api/internal/completion"
	"github.com/ai-blog-api/internal/models"
	"github.com/ai-blog-api/internal/repository"
	"github.com/ai-blog-api/pkg/slug"
)

// maxCommentsPerTarget is the threshold below which the comment bot
// considers a post under-commented
const maxCommentsPerTarget = 3

// generatorService is the concrete implementation of GeneratorService
type generatorService struct {
	repos        *repository.Repositories
	completerFor CompleterFactory
	log          zerolog.Logger
}

// newGeneratorService creates a new GeneratorService
func newGeneratorService(repos *repository.Repositories, completerFor CompleterFactory, log zerolog.Logger) *generatorService {
	return &generatorService{
		repos:        repos,
		completerFor: completerFor,
		log:          log.With().Str("service", "generator").Logger(),
	}
}

// requireFlag checks that a boolean configuration flag holds the literal
// "true". Any other value, or a missing row, skips the pipeline.
func (s *generatorService) requireFlag(ctx context.Context, key, disabledMsg string) error {
	cfg, err := s.repos.Config.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", key, err)
	}
	if !cfg.Enabled() {
		return &PipelineSkipped{Reason: disabledMsg}
	}
	return nil
}

// apiKey reads the completion API key from system configuration
func (s *generatorService) apiKey(ctx context.Context) (string, error) {
	cfg, err := s.repos.Config.Get(ctx, models.ConfigKeyOpenAIAPIKey)
	if err != nil {
		return "", fmt.Errorf("failed to read API key config: %w", err)
	}
	if cfg == nil || cfg.Value == "" {
		return "", &PipelineSkipped{Reason: "OpenAI API key not configured"}
	}
	return cfg.Value, nil
}

// resolveSystemAuthor looks up the well-known system account and creates it
// once if missing
func (s *generatorService) resolveSystemAuthor(ctx context.Context) (*models.User, error) {
	user, err := s.repos.User.GetByEmail(ctx, models.SystemAuthorEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to look up system author: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user = &models.User{
		ID:        uuid.NewString(),
		Email:     models.SystemAuthorEmail,
		Name:      models.SystemAuthorName,
		Role:      models.SystemAuthorRole,
		CreatedAt: time.Now(),
	}
	if err := s.repos.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create system author: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("Created system author account")
	return user, nil
}

// GeneratePost writes one blog post on a random topic and publishes it
func (s *generatorService) GeneratePost(ctx context.Context) (*models.Blog, error) {
	if err := s.requireFlag(ctx, models.ConfigKeyBlogGenerationEnabled, "Blog generation is disabled"); err != nil {
		return nil, err
	}

	apiKey, err := s.apiKey(ctx)
	if err != nil {
		return nil, err
	}

	topic := blogTopics[rand.Intn(len(blogTopics))]
	category := blogCategories[rand.Intn(len(blogCategories))]

	raw, err := s.completerFor(apiKey).Complete(ctx, completion.Request{
		System:      blogWriterSystem,
		Prompt:      blogPrompt(topic, category),
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, &GenerationError{Stage: "completion", Err: err}
	}

	draft, err := completion.ParseBlogDraft(raw)
	if err != nil {
		return nil, &GenerationError{Stage: "parse", Err: err}
	}

	author, err := s.resolveSystemAuthor(ctx)
	if err != nil {
		return nil, &GenerationError{Stage: "author resolution", Err: err}
	}

	now := time.Now()
	blog := &models.Blog{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Content:     draft.Content,
		Slug:        slug.Unique(draft.Title, now),
		Category:    category,
		Tags:        draft.Tags,
		Status:      models.BlogStatusPublished,
		AuthorID:    author.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
		PublishedAt: &now,
	}

	if err := s.repos.Blog.Create(ctx, blog); err != nil {
		return nil, &GenerationError{Stage: "persistence", Err: err}
	}

	s.log.Info().
		Str("blog_id", blog.ID).
		Str("slug", blog.Slug).
		Str("topic", topic).
		Str("category", category).
		Msg("Blog post generated")

	return blog, nil
}

// GenerateComment writes one bot comment on an under-commented recent post
func (s *generatorService) GenerateComment(ctx context.Context) (*models.Comment, error) {
	if err := s.requireFlag(ctx, models.ConfigKeyCommentBotEnabled, "Comment bot is disabled"); err != nil {
		return nil, err
	}

	apiKey, err := s.apiKey(ctx)
	if err != nil {
		return nil, err
	}

	candidates, err := s.repos.Blog.ListRecentPublishedWithCommentCounts(ctx, 5)
	if err != nil {
		return nil, &GenerationError{Stage: "persistence", Err: err}
	}
	if len(candidates) == 0 {
		return nil, &PipelineSkipped{Reason: "No blogs available for commenting"}
	}

	target := pickCommentTarget(candidates)
	authorName := commentAuthorNames[rand.Intn(len(commentAuthorNames))]

	raw, err := s.completerFor(apiKey).Complete(ctx, completion.Request{
		System:      commentWriterSystem,
		Prompt:      commentPrompt(target.Title),
		MaxTokens:   150,
		Temperature: 0.8,
	})
	if err != nil {
		return nil, &GenerationError{Stage: "completion", Err: err}
	}

	comment := &models.Comment{
		ID:             uuid.NewString(),
		BlogID:         target.ID,
		AuthorName:     authorName,
		Content:        strings.TrimSpace(raw),
		IsBotGenerated: true,
		Status:         models.CommentStatusApproved,
		CreatedAt:      time.Now(),
	}

	if err := s.repos.Comment.Create(ctx, comment); err != nil {
		return nil, &GenerationError{Stage: "persistence", Err: err}
	}

	s.log.Info().
		Str("comment_id", comment.ID).
		Str("blog_id", target.ID).
		Str("author", authorName).
		Msg("Bot comment generated")

	return comment, nil
}

// pickCommentTarget returns the first candidate with fewer comments than the
// threshold, falling back to the first (most recent) candidate
func pickCommentTarget(candidates []*models.BlogWithCommentCount) *models.BlogWithCommentCount {
	for _, c := range candidates {
		if c.CommentCount < maxCommentsPerTarget {
			return c
		}
	}
	return candidates[0]
}

// SummarizeBlog writes a short summary into the blog's summary field. The
// summary is set at most once: a post that already has one is left alone.
func (s *generatorService) SummarizeBlog(ctx context.Context, blogID string) (string, error) {
	blog, err := s.repos.Blog.GetByID(ctx, blogID)
	if err != nil {
		return "", &GenerationError{Stage: "persistence", Err: err}
	}
	if blog == nil {
		return "", fmt.Errorf("blog post %s: %w", blogID, ErrNotFound)
	}

	if blog.HasSummary() {
		return "", &PipelineSkipped{Reason: "Blog already has a summary"}
	}

	apiKey, err := s.apiKey(ctx)
	if err != nil {
		return "", err
	}

	raw, err := s.completerFor(apiKey).Complete(ctx, completion.Request{
		System:      summaryWriterSystem,
		Prompt:      summaryPrompt(blog),
		MaxTokens:   150,
		Temperature: 0.3,
	})
	if err != nil {
		return "", &GenerationError{Stage: "completion", Err: err}
	}

	summary := strings.TrimSpace(raw)
	if err := s.repos.Blog.UpdateSummary(ctx, blog.ID, summary); err != nil {
		return "", &GenerationError{Stage: "persistence", Err: err}
	}

	s.log.Info().Str("blog_id", blog.ID).Msg("Summary generated")
	return summary, nil
}

// GenerateSocialPosts creates draft social copy for every platform profile.
// A failing platform is logged and skipped; the batch never aborts midway.
func (s *generatorService) GenerateSocialPosts(ctx context.Context, blogID string) ([]*models.SocialPost, error) {
	if err := s.requireFlag(ctx, models.ConfigKeySocialAutomation, "Social media automation is disabled"); err != nil {
		return nil, err
	}

	blog, err := s.repos.Blog.GetByID(ctx, blogID)
	if err != nil {
		return nil, &GenerationError{Stage: "persistence", Err: err}
	}
	if blog == nil {
		return nil, fmt.Errorf("blog post %s: %w", blogID, ErrNotFound)
	}

	apiKey, err := s.apiKey(ctx)
	if err != nil {
		return nil, err
	}
	completer := s.completerFor(apiKey)

	var posts []*models.SocialPost
	for _, profile := range platformProfiles {
		raw, err := completer.Complete(ctx, completion.Request{
			System:      socialWriterSystem,
			Prompt:      socialPrompt(blog, profile),
			MaxTokens:   300,
			Temperature: 0.7,
		})
		if err != nil {
			s.log.Warn().
				Err(err).
				Str("blog_id", blog.ID).
				Str("platform", string(profile.Platform)).
				Msg("Social post generation failed, continuing with next platform")
			continue
		}

		post := &models.SocialPost{
			ID:        uuid.NewString(),
			BlogID:    blog.ID,
			Platform:  profile.Platform,
			Content:   strings.TrimSpace(raw),
			Status:    models.SocialPostStatusDraft,
			CreatedAt: time.Now(),
		}
		if err := s.repos.Social.Create(ctx, post); err != nil {
			s.log.Warn().
				Err(err).
				Str("blog_id", blog.ID).
				Str("platform", string(profile.Platform)).
				Msg("Social post insert failed, continuing with next platform")
			continue
		}

		posts = append(posts, post)
	}

	s.log.Info().
		Str("blog_id", blog.ID).
		Int("generated", len(posts)).
		Msg("Social post batch completed")

	return posts, nil
}
