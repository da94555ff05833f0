package mocks

import (
	"context"
	"time"

	"github.com/ai-blog-api/internal/models"
	"github.com/ai-blog-api/internal/repository"
)

// MockBlogRepository is a mock implementation of BlogRepository
type MockBlogRepository struct {
	Blogs           map[string]*models.Blog
	RecentPublished []*models.BlogWithCommentCount
	Created         []*models.Blog
	SummaryUpdates  map[string]string
	ViewCounts      map[string]int
	LikeCounts      map[string]int
	CreateErr       error
	UpdateErr       error
}

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{
		Blogs:          make(map[string]*models.Blog),
		SummaryUpdates: make(map[string]string),
		ViewCounts:     make(map[string]int),
		LikeCounts:     make(map[string]int),
	}
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Blogs[blog.ID] = blog
	m.Created = append(m.Created, blog)
	return nil
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	return m.Blogs[id], nil
}

func (m *MockBlogRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	for _, b := range m.Blogs {
		if b.Slug == slug && b.Status == models.BlogStatusPublished {
			return b, nil
		}
	}
	return nil, nil
}

func (m *MockBlogRepository) List(ctx context.Context, filter repository.BlogFilter) ([]*models.Blog, error) {
	var out []*models.Blog
	for _, b := range m.Blogs {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.Category != "" && b.Category != filter.Category {
			continue
		}
		out = append(out, b)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

func (m *MockBlogRepository) ListRecentPublishedWithCommentCounts(ctx context.Context, limit int) ([]*models.BlogWithCommentCount, error) {
	if limit < len(m.RecentPublished) {
		return m.RecentPublished[:limit], nil
	}
	return m.RecentPublished, nil
}

func (m *MockBlogRepository) UpdateSummary(ctx context.Context, id, summary string) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.SummaryUpdates[id] = summary
	if b, ok := m.Blogs[id]; ok {
		b.Summary = &summary
	}
	return nil
}

func (m *MockBlogRepository) IncrementViewCount(ctx context.Context, id string) (bool, error) {
	if _, ok := m.Blogs[id]; !ok {
		return false, nil
	}
	m.ViewCounts[id]++
	return true, nil
}

func (m *MockBlogRepository) IncrementLikeCount(ctx context.Context, id string) (bool, error) {
	if _, ok := m.Blogs[id]; !ok {
		return false, nil
	}
	m.LikeCounts[id]++
	return true, nil
}

func (m *MockBlogRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := m.Blogs[id]
	return ok, nil
}

func (m *MockBlogRepository) Count(ctx context.Context, filter repository.BlogFilter) (int, error) {
	blogs, _ := m.List(ctx, filter)
	return len(blogs), nil
}

func (m *MockBlogRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	count := 0
	for _, b := range m.Blogs {
		if !b.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments  map[string]*models.Comment
	Created   []*models.Comment
	CreateErr error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[string]*models.Comment),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Comments[comment.ID] = comment
	m.Created = append(m.Created, comment)
	return nil
}

func (m *MockCommentRepository) ListApprovedByBlog(ctx context.Context, blogID string) ([]*models.Comment, error) {
	var out []*models.Comment
	for _, c := range m.Comments {
		if c.BlogID == blogID && c.Status == models.CommentStatusApproved {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	return len(m.Comments), nil
}

func (m *MockCommentRepository) CountBotGenerated(ctx context.Context) (int, error) {
	count := 0
	for _, c := range m.Comments {
		if c.IsBotGenerated {
			count++
		}
	}
	return count, nil
}

// MockSocialPostRepository is a mock implementation of SocialPostRepository
type MockSocialPostRepository struct {
	Posts     []*models.SocialPost
	CreateErr error
}

func NewMockSocialPostRepository() *MockSocialPostRepository {
	return &MockSocialPostRepository{}
}

func (m *MockSocialPostRepository) Create(ctx context.Context, post *models.SocialPost) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Posts = append(m.Posts, post)
	return nil
}

func (m *MockSocialPostRepository) ListByBlog(ctx context.Context, blogID string) ([]*models.SocialPost, error) {
	var out []*models.SocialPost
	for _, p := range m.Posts {
		if p.BlogID == blogID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockSocialPostRepository) Count(ctx context.Context) (int, error) {
	return len(m.Posts), nil
}

// MockConfigRepository is a mock implementation of ConfigRepository
type MockConfigRepository struct {
	Configs map[string]*models.SystemConfig
	GetErr  error
}

func NewMockConfigRepository() *MockConfigRepository {
	return &MockConfigRepository{
		Configs: make(map[string]*models.SystemConfig),
	}
}

// Set stores a config value directly, for test setup
func (m *MockConfigRepository) Set(key, value string) {
	m.Configs[key] = &models.SystemConfig{Key: key, Value: value, UpdatedAt: time.Now()}
}

func (m *MockConfigRepository) Get(ctx context.Context, key string) (*models.SystemConfig, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Configs[key], nil
}

func (m *MockConfigRepository) List(ctx context.Context) ([]*models.SystemConfig, error) {
	var out []*models.SystemConfig
	for _, c := range m.Configs {
		out = append(out, c)
	}
	return out, nil
}

func (m *MockConfigRepository) Upsert(ctx context.Context, key, value string) (*models.SystemConfig, error) {
	m.Set(key, value)
	return m.Configs[key], nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users       map[string]*models.User
	EmailToUser map[string]*models.User
	CreateCalls int
	CreateErr   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:       make(map[string]*models.User),
		EmailToUser: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.CreateCalls++
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Users[user.ID] = user
	m.EmailToUser[user.Email] = user
	return nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.EmailToUser[email], nil
}

// NewMockRepositories bundles fresh mocks into a Repositories value
func NewMockRepositories() (*repository.Repositories, *MockBlogRepository, *MockCommentRepository, *MockSocialPostRepository, *MockConfigRepository, *MockUserRepository) {
	blog := NewMockBlogRepository()
	comment := NewMockCommentRepository()
	social := NewMockSocialPostRepository()
	config := NewMockConfigRepository()
	user := NewMockUserRepository()

	repos := &repository.Repositories{
		Blog:    blog,
		Comment: comment,
		Social:  social,
		Config:  config,
		User:    user,
	}
	return repos, blog, comment, social, config, user
}
