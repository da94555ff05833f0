package service

import (
	"fmt"
	"strings"

	"github.com/ai-blog-api/internal/models"
)

var blogTopics = []string{
	"Artificial Intelligence and Machine Learning",
	"Web Development Best Practices",
	"Future of Technology",
	"Digital Marketing Strategies",
	"Cybersecurity Essentials",
	"Cloud Computing Trends",
	"Mobile App Development",
	"Data Science and Analytics",
	"User Experience Design",
	"Blockchain Technology",
}

var blogCategories = []string{
	"Technology", "Business", "Science", "Health", "Education",
	"Innovation", "Trends", "Tutorial", "Opinion", "News",
}

var commentAuthorNames = []string{
	"Alex Johnson", "Sarah Chen", "Mike Rodriguez", "Emma Wilson", "David Kim",
	"Lisa Brown", "Ryan Taylor", "Maya Patel", "James Davis", "Anna Garcia",
	"Chris Lee", "Jessica Wang", "Kevin Murphy", "Rachel Green", "Tom Anderson",
}

// platformProfile carries per-platform style and the length ceiling. The
// ceiling is communicated to the model through the prompt only; it is not
// enforced on the response.
type platformProfile struct {
	Platform  models.SocialPlatform
	MaxLength int
	Style     string
}

var platformProfiles = []platformProfile{
	{models.PlatformTwitter, 280, "concise, engaging, with relevant hashtags"},
	{models.PlatformLinkedIn, 3000, "professional, insightful, thought-leadership focused"},
	{models.PlatformFacebook, 2000, "conversational, engaging, community-focused"},
	{models.PlatformInstagram, 2200, "visual-focused caption, inspirational, with strategic hashtags"},
}

const blogWriterSystem = "You are a professional blog writer. Create engaging, informative blog posts with clear structure and valuable insights."

func blogPrompt(topic, category string) string {
	return fmt.Sprintf(`Write a comprehensive blog post about "%s" in the "%s" category.
The post should be:
- 400-600 words long
- Well-structured with clear sections
- Informative and engaging
- Professional but accessible
- Include practical insights or tips

Format the response as JSON with:
- title: A compelling title
- content: The full blog post content (plain text, no markdown)
- tags: Array of 3-5 relevant tags`, topic, category)
}

const commentWriterSystem = "You are generating realistic, engaging comments for blog posts. Create comments that sound natural and add value to the discussion."

func commentPrompt(blogTitle string) string {
	return fmt.Sprintf(`Generate a thoughtful comment for this blog post titled "%s".
The comment should be:
- 1-3 sentences long
- Constructive and relevant
- Sound like a real person wrote it
- Add value to the discussion
- Be positive but authentic

Just return the comment text, nothing else.`, blogTitle)
}

const summaryWriterSystem = "You are a professional editor who creates concise, engaging summaries of blog posts."

func summaryPrompt(blog *models.Blog) string {
	return fmt.Sprintf(`Please create a concise summary of this blog post. The summary should be 2-3 sentences long and capture the main points and key insights.

Title: %s

Content: %s

Create a summary that would help readers quickly understand what the blog post is about and its main value.`, blog.Title, blog.Content)
}

const socialWriterSystem = "You are a social media expert who creates platform-specific content that drives engagement and reaches the right audience."

func socialPrompt(blog *models.Blog, profile platformProfile) string {
	return fmt.Sprintf(`Create a %s post for this blog article.

Blog Title: %s
Blog Content: %s
Blog Category: %s
Blog Tags: %s

Requirements for %s:
- Style: %s
- Maximum length: %d characters
- Include a call-to-action to read the full blog
- Make it engaging and shareable
- Include relevant hashtags (2-5 for Twitter, 3-7 for Instagram, 1-3 for LinkedIn/Facebook)

Return only the post content, no additional text or formatting.`,
		profile.Platform, blog.Title, blog.Content, blog.Category,
		strings.Join(blog.Tags, ", "), profile.Platform, profile.Style, profile.MaxLength)
}
