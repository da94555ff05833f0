package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ai-blog-api/internal/service"
)

// GenerateHandler handles the content generation endpoints
type GenerateHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(services *service.Services, log zerolog.Logger) *GenerateHandler {
	return &GenerateHandler{
		services: services,
		log:      log.With().Str("handler", "generate").Logger(),
	}
}

// blogIDRequest is the body shared by the summary and social endpoints
type blogIDRequest struct {
	BlogID string `json:"blog_id"`
}

// GenerateBlog handles POST /v1/generate/blog
func (h *GenerateHandler) GenerateBlog(c *gin.Context) {
	ctx := c.Request.Context()

	blog, err := h.services.Generator.GeneratePost(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"blog":    blog,
		"message": "Blog post generated successfully",
	})
}

// GenerateComment handles POST /v1/generate/comment
func (h *GenerateHandler) GenerateComment(c *gin.Context) {
	ctx := c.Request.Context()

	comment, err := h.services.Generator.GenerateComment(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"comment": comment,
		"message": "Comment generated successfully",
	})
}

// GenerateSummary handles POST /v1/generate/summary
func (h *GenerateHandler) GenerateSummary(c *gin.Context) {
	ctx := c.Request.Context()

	var req blogIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BlogID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Blog ID is required",
		})
		return
	}

	summary, err := h.services.Generator.SummarizeBlog(ctx, req.BlogID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"summary": summary,
		"message": "Summary generated successfully",
	})
}

// GenerateSocial handles POST /v1/generate/social
func (h *GenerateHandler) GenerateSocial(c *gin.Context) {
	ctx := c.Request.Context()

	var req blogIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BlogID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Blog ID is required",
		})
		return
	}

	posts, err := h.services.Generator.GenerateSocialPosts(ctx, req.BlogID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"posts":   posts,
		"message": fmt.Sprintf("Generated %d social media posts", len(posts)),
	})
}

// respondError maps pipeline errors onto the generation response contract.
// A skipped pipeline is an informational 200; everything else is a 500 with
// the error message passed through.
func (h *GenerateHandler) respondError(c *gin.Context, err error) {
	var skipped *service.PipelineSkipped
	if errors.As(err, &skipped) {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": skipped.Reason,
		})
		return
	}

	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Generation failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
