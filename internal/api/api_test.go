package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ai-blog-api/internal/api"
	"github.com/ai-blog-api/internal/mocks"
	"github.com/ai-blog-api/internal/models"
	"github.com/ai-blog-api/internal/service"
)

func setupTestRouter() (*gin.Engine, *mocks.MockGeneratorService, *mocks.MockBlogService, *mocks.MockAdminService) {
	gin.SetMode(gin.TestMode)

	mockGenerator := mocks.NewMockGeneratorService()
	mockBlog := mocks.NewMockBlogService()
	mockBlog.MissErr = service.ErrNotFound
	mockAdmin := mocks.NewMockAdminService()

	services := &service.Services{
		Generator:  mockGenerator,
		Blog:       mockBlog,
		Admin:      mockAdmin,
		Automation: mocks.NewMockAutomationService(),
	}

	log := zerolog.Nop()
	router := api.NewRouter(services, log)

	return router, mockGenerator, mockBlog, mockAdmin
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "ai-blog-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestCORSPreflight(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("OPTIONS", "/v1/generate/blog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard CORS origin, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got != "authorization, x-client-info, apikey, content-type" {
		t.Errorf("Unexpected allowed headers: %q", got)
	}
}

func TestGenerateBlogSuccess(t *testing.T) {
	router, mockGenerator, _, _ := setupTestRouter()
	mockGenerator.Blog = &models.Blog{
		ID:     "blog-1",
		Title:  "Hello World",
		Slug:   "hello-world-1700000000000",
		Status: models.BlogStatusPublished,
	}

	req := httptest.NewRequest("POST", "/v1/generate/blog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["success"] != true {
		t.Errorf("Expected success true, got %v", response["success"])
	}
	blog, ok := response["blog"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected blog object in response, got %v", response["blog"])
	}
	if blog["title"] != "Hello World" {
		t.Errorf("Expected blog title 'Hello World', got %v", blog["title"])
	}
	if mockGenerator.PostCalls != 1 {
		t.Errorf("Expected 1 generator call, got %d", mockGenerator.PostCalls)
	}
}

func TestGenerateBlogDisabledReturns200(t *testing.T) {
	router, mockGenerator, _, _ := setupTestRouter()
	mockGenerator.PostErr = &service.PipelineSkipped{Reason: "Blog generation is disabled"}

	req := httptest.NewRequest("POST", "/v1/generate/blog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for skipped pipeline, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["success"] != false {
		t.Errorf("Expected success false, got %v", response["success"])
	}
	if response["message"] != "Blog generation is disabled" {
		t.Errorf("Expected disabled message, got %v", response["message"])
	}
}

func TestGenerateBlogFailureReturns500(t *testing.T) {
	router, mockGenerator, _, _ := setupTestRouter()
	mockGenerator.PostErr = &service.GenerationError{
		Stage: "completion",
		Err:   &mockUpstreamError{},
	}

	req := httptest.NewRequest("POST", "/v1/generate/blog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["success"] != false {
		t.Errorf("Expected success false, got %v", response["success"])
	}
	if response["error"] == nil || response["error"] == "" {
		t.Error("Expected error message in response")
	}
}

type mockUpstreamError struct{}

func (e *mockUpstreamError) Error() string { return "OpenAI API error: 429 Too Many Requests" }

func TestGenerateCommentSuccess(t *testing.T) {
	router, mockGenerator, _, _ := setupTestRouter()
	mockGenerator.Comment = &models.Comment{
		ID:             "comment-1",
		BlogID:         "blog-1",
		AuthorName:     "Alex Chen",
		Content:        "Great post!",
		IsBotGenerated: true,
		Status:         models.CommentStatusApproved,
	}

	req := httptest.NewRequest("POST", "/v1/generate/comment", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["success"] != true {
		t.Errorf("Expected success true, got %v", response["success"])
	}
}

func TestGenerateSummaryMissingBlogID(t *testing.T) {
	router, mockGenerator, _, _ := setupTestRouter()

	for _, body := range []string{"", "{}", `{"blog_id":""}`} {
		req := httptest.NewRequest("POST", "/v1/generate/summary", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Body %q: expected status 500, got %d", body, w.Code)
		}

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		if response["error"] != "Blog ID is required" {
			t.Errorf("Body %q: expected 'Blog ID is required', got %v", body, response["error"])
		}
	}

	if mockGenerator.SummaryCalls != 0 {
		t.Errorf("Expected no generator calls, got %d", mockGenerator.SummaryCalls)
	}
}

func TestGenerateSummarySuccess(t *testing.T) {
	router, mockGenerator, _, _ := setupTestRouter()
	mockGenerator.Summary = "A short summary."

	body := bytes.NewBufferString(`{"blog_id":"blog-1"}`)
	req := httptest.NewRequest("POST", "/v1/generate/summary", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["summary"] != "A short summary." {
		t.Errorf("Expected summary in response, got %v", response["summary"])
	}
}

func TestGenerateSocialReportsCount(t *testing.T) {
	router, mockGenerator, _, _ := setupTestRouter()
	mockGenerator.SocialPosts = []*models.SocialPost{
		{ID: "sp-1", Platform: models.PlatformTwitter},
		{ID: "sp-2", Platform: models.PlatformLinkedIn},
		{ID: "sp-3", Platform: models.PlatformFacebook},
	}

	body := bytes.NewBufferString(`{"blog_id":"blog-1"}`)
	req := httptest.NewRequest("POST", "/v1/generate/social", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["message"] != "Generated 3 social media posts" {
		t.Errorf("Expected count message, got %v", response["message"])
	}
}

func TestGetBlogBySlug(t *testing.T) {
	router, _, mockBlog, _ := setupTestRouter()
	mockBlog.BlogBySlug["my-post-123"] = &models.Blog{
		ID:     "blog-1",
		Title:  "My Post",
		Slug:   "my-post-123",
		Status: models.BlogStatusPublished,
	}

	req := httptest.NewRequest("GET", "/v1/blogs/my-post-123", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var blog models.Blog
	json.Unmarshal(w.Body.Bytes(), &blog)
	if blog.Title != "My Post" {
		t.Errorf("Expected blog title 'My Post', got %q", blog.Title)
	}
}

func TestGetBlogNotFound(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/blogs/no-such-slug", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestListBlogsWithFilters(t *testing.T) {
	router, _, mockBlog, _ := setupTestRouter()
	mockBlog.Blogs = []*models.Blog{
		{ID: "blog-1", Status: models.BlogStatusPublished},
		{ID: "blog-2", Status: models.BlogStatusPublished},
	}

	req := httptest.NewRequest("GET", "/v1/blogs?status=published&limit=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["count"] != float64(2) {
		t.Errorf("Expected count 2, got %v", response["count"])
	}
}

func TestListBlogsInvalidLimit(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/blogs?limit=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestSubmitCommentValidation(t *testing.T) {
	router, _, mockBlog, _ := setupTestRouter()

	// Missing author_name
	body := bytes.NewBufferString(`{"content":"Nice article"}`)
	req := httptest.NewRequest("POST", "/v1/blogs/blog-1/comments", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for missing author name, got %d", w.Code)
	}
	if len(mockBlog.Submitted) != 0 {
		t.Errorf("Expected no submission, got %d", len(mockBlog.Submitted))
	}
}

func TestSubmitCommentSuccess(t *testing.T) {
	router, _, mockBlog, _ := setupTestRouter()

	body := bytes.NewBufferString(`{"author_name":"Reader","content":"Nice article"}`)
	req := httptest.NewRequest("POST", "/v1/blogs/blog-1/comments", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(mockBlog.Submitted) != 1 {
		t.Fatalf("Expected 1 submission, got %d", len(mockBlog.Submitted))
	}
	if mockBlog.Submitted[0].AuthorName != "Reader" {
		t.Errorf("Expected submission author 'Reader', got %q", mockBlog.Submitted[0].AuthorName)
	}
}

func TestLikeBlogNotFound(t *testing.T) {
	router, _, mockBlog, _ := setupTestRouter()
	mockBlog.LikeErr = service.ErrNotFound

	req := httptest.NewRequest("POST", "/v1/blogs/missing/like", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestUpdateConfig(t *testing.T) {
	router, _, _, mockAdmin := setupTestRouter()

	body := bytes.NewBufferString(`{"value":"true"}`)
	req := httptest.NewRequest("PUT", "/v1/admin/configs/blog_generation_enabled", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if mockAdmin.Updated["blog_generation_enabled"] != "true" {
		t.Errorf("Expected config update recorded, got %v", mockAdmin.Updated)
	}
}

func TestUpdateConfigUnknownKey(t *testing.T) {
	router, _, _, mockAdmin := setupTestRouter()

	body := bytes.NewBufferString(`{"value":"true"}`)
	req := httptest.NewRequest("PUT", "/v1/admin/configs/not_a_real_key", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if len(mockAdmin.Updated) != 0 {
		t.Errorf("Expected no config update, got %v", mockAdmin.Updated)
	}
}

func TestAdminStats(t *testing.T) {
	router, _, _, mockAdmin := setupTestRouter()
	mockAdmin.StatsData = &models.DashboardStats{
		TotalBlogs:     10,
		PublishedBlogs: 7,
		DraftBlogs:     3,
		TotalComments:  25,
		BotComments:    12,
		SocialPosts:    16,
		BlogsToday:     2,
	}

	req := httptest.NewRequest("GET", "/v1/admin/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var stats models.DashboardStats
	json.Unmarshal(w.Body.Bytes(), &stats)
	if stats.TotalBlogs != 10 || stats.BotComments != 12 {
		t.Errorf("Unexpected stats payload: %+v", stats)
	}
}
