package completion

import (
	"encoding/json"
	"strings"
)

// BlogDraft is the structured object the blog-writing prompt asks the model
// to return
type BlogDraft struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// ParseBlogDraft decodes a blog draft out of free-form model output. Models
// sometimes wrap JSON in a fenced code block, so fences are stripped before
// decoding. The decode is strict: invalid JSON or a missing title/content
// yields a ParseError.
func ParseBlogDraft(raw string) (*BlogDraft, error) {
	text := stripCodeFence(strings.TrimSpace(raw))

	var draft BlogDraft
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", Err: err}
	}

	if strings.TrimSpace(draft.Title) == "" {
		return nil, &ParseError{Reason: "missing title"}
	}
	if strings.TrimSpace(draft.Content) == "" {
		return nil, &ParseError{Reason: "missing content"}
	}
	if draft.Tags == nil {
		draft.Tags = []string{}
	}

	return &draft, nil
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Optional language tag on the opening fence
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		first := strings.TrimSpace(text[:idx])
		if first == "" || first == "json" {
			text = text[idx+1:]
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
