package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ai-blog-api/internal/service"
	"github.com/ai-blog-api/internal/validation"
)

// AdminHandler handles the admin dashboard endpoints
type AdminHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// ListConfigs handles GET /v1/admin/configs
func (h *AdminHandler) ListConfigs(c *gin.Context) {
	ctx := c.Request.Context()

	configs, err := h.services.Admin.ListConfigs(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list configs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list configs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"configs": configs})
}

// UpdateConfig handles PUT /v1/admin/configs/:key
func (h *AdminHandler) UpdateConfig(c *gin.Context) {
	ctx := c.Request.Context()
	key := c.Param("key")

	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if validationErrors := validation.ValidateConfigUpdate(key); len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"errors": validationErrors,
		})
		return
	}

	cfg, err := h.services.Admin.UpdateConfig(ctx, key, req.Value)
	if err != nil {
		h.log.Error().Err(err).Str("key", key).Msg("Failed to update config")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update config"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// Stats handles GET /v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.services.Admin.Stats(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
