package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ai-blog-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// MaxAuthorNameLength is the maximum allowed comment author name length
const MaxAuthorNameLength = 100

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateCommentSubmission validates a reader-submitted comment
func ValidateCommentSubmission(sub *models.CommentSubmission) []ValidationError {
	var errors []ValidationError

	name := strings.TrimSpace(sub.AuthorName)
	if name == "" {
		errors = append(errors, ValidationError{Field: "author_name", Message: "author_name is required"})
	} else if len(name) > MaxAuthorNameLength {
		errors = append(errors, ValidationError{
			Field:   "author_name",
			Message: fmt.Sprintf("author_name must be at most %d characters", MaxAuthorNameLength),
		})
	}

	if sub.AuthorEmail != "" && !emailRegex.MatchString(sub.AuthorEmail) {
		errors = append(errors, ValidationError{Field: "author_email", Message: "invalid email format", Value: sub.AuthorEmail})
	}

	content := strings.TrimSpace(sub.Content)
	if content == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	} else if wordCount(content) > models.MaxCommentWords {
		errors = append(errors, ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("content must be at most %d words", models.MaxCommentWords),
		})
	}

	return errors
}

// ValidateConfigUpdate validates an admin config write
func ValidateConfigUpdate(key string) []ValidationError {
	if !models.KnownConfigKeys[key] {
		return []ValidationError{{
			Field:   "key",
			Message: "unrecognized configuration key",
			Value:   key,
		}}
	}
	return nil
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
