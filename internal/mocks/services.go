package mocks

import (
	"context"

	"github.com/ai-blog-api/internal/models"
	"github.com/ai-blog-api/internal/repository"
)

// MockGeneratorService is a mock implementation of GeneratorService
type MockGeneratorService struct {
	Blog        *models.Blog
	Comment     *models.Comment
	Summary     string
	SocialPosts []*models.SocialPost

	PostErr    error
	CommentErr error
	SummaryErr error
	SocialErr  error

	PostCalls    int
	CommentCalls int
	SummaryCalls int
	SocialCalls  int
}

func NewMockGeneratorService() *MockGeneratorService {
	return &MockGeneratorService{}
}

func (m *MockGeneratorService) GeneratePost(ctx context.Context) (*models.Blog, error) {
	m.PostCalls++
	if m.PostErr != nil {
		return nil, m.PostErr
	}
	return m.Blog, nil
}

func (m *MockGeneratorService) GenerateComment(ctx context.Context) (*models.Comment, error) {
	m.CommentCalls++
	if m.CommentErr != nil {
		return nil, m.CommentErr
	}
	return m.Comment, nil
}

func (m *MockGeneratorService) SummarizeBlog(ctx context.Context, blogID string) (string, error) {
	m.SummaryCalls++
	if m.SummaryErr != nil {
		return "", m.SummaryErr
	}
	return m.Summary, nil
}

func (m *MockGeneratorService) GenerateSocialPosts(ctx context.Context, blogID string) ([]*models.SocialPost, error) {
	m.SocialCalls++
	if m.SocialErr != nil {
		return nil, m.SocialErr
	}
	return m.SocialPosts, nil
}

// MockBlogService is a mock implementation of BlogService
type MockBlogService struct {
	Blogs       []*models.Blog
	BlogBySlug  map[string]*models.Blog
	Comments    []*models.Comment
	SocialPosts []*models.SocialPost
	Submitted   []*models.CommentSubmission

	ListErr   error
	GetErr    error
	MissErr   error
	LikeErr   error
	SubmitErr error
}

func NewMockBlogService() *MockBlogService {
	return &MockBlogService{
		BlogBySlug: make(map[string]*models.Blog),
	}
}

func (m *MockBlogService) ListBlogs(ctx context.Context, filter repository.BlogFilter) ([]*models.Blog, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Blogs, nil
}

func (m *MockBlogService) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if blog, ok := m.BlogBySlug[slug]; ok {
		return blog, nil
	}
	// MissErr stands in for the service's not-found sentinel; mocks cannot
	// import the service package because its white-box tests import mocks.
	return nil, m.MissErr
}

func (m *MockBlogService) LikeBlog(ctx context.Context, id string) error {
	return m.LikeErr
}

func (m *MockBlogService) ListComments(ctx context.Context, blogID string) ([]*models.Comment, error) {
	return m.Comments, nil
}

func (m *MockBlogService) SubmitComment(ctx context.Context, blogID string, sub *models.CommentSubmission) (*models.Comment, error) {
	if m.SubmitErr != nil {
		return nil, m.SubmitErr
	}
	m.Submitted = append(m.Submitted, sub)
	return &models.Comment{
		ID:         "comment-1",
		BlogID:     blogID,
		AuthorName: sub.AuthorName,
		Content:    sub.Content,
		Status:     models.CommentStatusApproved,
	}, nil
}

func (m *MockBlogService) ListSocialPosts(ctx context.Context, blogID string) ([]*models.SocialPost, error) {
	return m.SocialPosts, nil
}

// MockAdminService is a mock implementation of AdminService
type MockAdminService struct {
	Configs   []*models.SystemConfig
	Updated   map[string]string
	StatsData *models.DashboardStats

	ListErr   error
	UpdateErr error
	StatsErr  error
}

func NewMockAdminService() *MockAdminService {
	return &MockAdminService{
		Updated:   make(map[string]string),
		StatsData: &models.DashboardStats{},
	}
}

func (m *MockAdminService) ListConfigs(ctx context.Context) ([]*models.SystemConfig, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Configs, nil
}

func (m *MockAdminService) UpdateConfig(ctx context.Context, key, value string) (*models.SystemConfig, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	m.Updated[key] = value
	return &models.SystemConfig{Key: key, Value: value}, nil
}

func (m *MockAdminService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	if m.StatsErr != nil {
		return nil, m.StatsErr
	}
	return m.StatsData, nil
}

// MockAutomationService is a mock implementation of AutomationService
type MockAutomationService struct {
	Started bool
	Stopped bool
}

func NewMockAutomationService() *MockAutomationService {
	return &MockAutomationService{}
}

func (m *MockAutomationService) StartProcessor(ctx context.Context) {
	m.Started = true
}

func (m *MockAutomationService) StopProcessor() {
	m.Stopped = true
}
