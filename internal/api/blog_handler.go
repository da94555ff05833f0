package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ai-blog-api/internal/models"
	"github.com/ai-blog-api/internal/repository"
	"github.com/ai-blog-api/internal/service"
	"github.com/ai-blog-api/internal/validation"
)

// BlogHandler handles the reader-facing blog endpoints
type BlogHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(services *service.Services, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		services: services,
		log:      log.With().Str("handler", "blog").Logger(),
	}
}

// ListBlogs handles GET /v1/blogs
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	ctx := c.Request.Context()

	filter := repository.BlogFilter{
		Status:   models.BlogStatus(c.Query("status")),
		Category: c.Query("category"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		filter.Limit = limit
	}

	blogs, err := h.services.Blog.ListBlogs(ctx, filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list blogs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list blogs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"blogs": blogs,
		"count": len(blogs),
	})
}

// GetBlog handles GET /v1/blogs/:id, where the path value is the slug
func (h *BlogHandler) GetBlog(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("id")

	blog, err := h.services.Blog.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to get blog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get blog"})
		return
	}

	c.JSON(http.StatusOK, blog)
}

// LikeBlog handles POST /v1/blogs/:id/like
func (h *BlogHandler) LikeBlog(c *gin.Context) {
	ctx := c.Request.Context()
	blogID := c.Param("id")

	if err := h.services.Blog.LikeBlog(ctx, blogID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		h.log.Error().Err(err).Str("blog_id", blogID).Msg("Failed to like blog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like blog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListComments handles GET /v1/blogs/:id/comments
func (h *BlogHandler) ListComments(c *gin.Context) {
	ctx := c.Request.Context()
	blogID := c.Param("id")

	comments, err := h.services.Blog.ListComments(ctx, blogID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		h.log.Error().Err(err).Str("blog_id", blogID).Msg("Failed to list comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": comments,
		"count":    len(comments),
	})
}

// SubmitComment handles POST /v1/blogs/:id/comments
func (h *BlogHandler) SubmitComment(c *gin.Context) {
	ctx := c.Request.Context()
	blogID := c.Param("id")

	var sub models.CommentSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if validationErrors := validation.ValidateCommentSubmission(&sub); len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"errors": validationErrors,
		})
		return
	}

	comment, err := h.services.Blog.SubmitComment(ctx, blogID, &sub)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		h.log.Error().Err(err).Str("blog_id", blogID).Msg("Failed to submit comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListSocialPosts handles GET /v1/blogs/:id/social
func (h *BlogHandler) ListSocialPosts(c *gin.Context) {
	ctx := c.Request.Context()
	blogID := c.Param("id")

	posts, err := h.services.Blog.ListSocialPosts(ctx, blogID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		h.log.Error().Err(err).Str("blog_id", blogID).Msg("Failed to list social posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list social posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}
