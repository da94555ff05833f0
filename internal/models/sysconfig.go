package models

import (
	"time"
)

// Recognized configuration keys. Values are strings; boolean flags use the
// literal "true" to enable, anything else counts as disabled.
const (
	ConfigKeyBlogGenerationEnabled  = "blog_generation_enabled"
	ConfigKeyBlogGenerationInterval = "blog_generation_interval"
	ConfigKeyCommentBotEnabled      = "comment_bot_enabled"
	ConfigKeyCommentBotInterval     = "comment_bot_interval"
	ConfigKeySocialAutomation       = "social_media_automation_enabled"
	ConfigKeyOpenAIAPIKey           = "openai_api_key"
)

// KnownConfigKeys defines the configuration keys the admin API accepts
var KnownConfigKeys = map[string]bool{
	ConfigKeyBlogGenerationEnabled:  true,
	ConfigKeyBlogGenerationInterval: true,
	ConfigKeyCommentBotEnabled:      true,
	ConfigKeyCommentBotInterval:     true,
	ConfigKeySocialAutomation:       true,
	ConfigKeyOpenAIAPIKey:           true,
}

// SystemConfig is a key/value configuration row. Last write wins; there is
// no versioning or audit trail.
type SystemConfig struct {
	Key         string    `json:"key" db:"key"`
	Value       string    `json:"value" db:"value"`
	Description string    `json:"description" db:"description"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Enabled reports whether a flag value means "on"
func (c *SystemConfig) Enabled() bool {
	return c != nil && c.Value == "true"
}
