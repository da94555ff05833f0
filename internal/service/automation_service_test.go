package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ai-blog-api/internal/mocks"
	"github.com/ai-blog-api/internal/models"
)

func TestAutomationRunsDuePipelines(t *testing.T) {
	generator := mocks.NewMockGeneratorService()
	cfg := mocks.NewMockConfigRepository()
	cfg.Set(models.ConfigKeyBlogGenerationEnabled, "true")
	cfg.Set(models.ConfigKeyBlogGenerationInterval, "60")
	cfg.Set(models.ConfigKeyCommentBotEnabled, "true")
	cfg.Set(models.ConfigKeyCommentBotInterval, "30")

	svc := newAutomationService(generator, cfg, time.Minute, zerolog.Nop())

	svc.runDue(context.Background())

	if generator.PostCalls != 1 {
		t.Errorf("Expected 1 post generation on first due tick, got %d", generator.PostCalls)
	}
	if generator.CommentCalls != 1 {
		t.Errorf("Expected 1 comment generation on first due tick, got %d", generator.CommentCalls)
	}

	// A second tick inside the interval does nothing
	svc.runDue(context.Background())
	if generator.PostCalls != 1 || generator.CommentCalls != 1 {
		t.Errorf("Expected no runs inside interval, got %d/%d", generator.PostCalls, generator.CommentCalls)
	}
}

func TestAutomationSkipsDisabledPipelines(t *testing.T) {
	generator := mocks.NewMockGeneratorService()
	cfg := mocks.NewMockConfigRepository()
	cfg.Set(models.ConfigKeyBlogGenerationEnabled, "false")
	// comment_bot_enabled missing entirely

	svc := newAutomationService(generator, cfg, time.Minute, zerolog.Nop())
	svc.runDue(context.Background())

	if generator.PostCalls != 0 || generator.CommentCalls != 0 {
		t.Errorf("Disabled pipelines must not run, got %d/%d", generator.PostCalls, generator.CommentCalls)
	}
}

func TestAutomationRunsAgainAfterInterval(t *testing.T) {
	generator := mocks.NewMockGeneratorService()
	cfg := mocks.NewMockConfigRepository()
	cfg.Set(models.ConfigKeyBlogGenerationEnabled, "true")
	cfg.Set(models.ConfigKeyBlogGenerationInterval, "30")

	svc := newAutomationService(generator, cfg, time.Minute, zerolog.Nop())
	svc.runDue(context.Background())

	// Pretend the last run happened long enough ago
	svc.lastBlogRun = time.Now().Add(-31 * time.Minute)
	svc.runDue(context.Background())

	if generator.PostCalls != 2 {
		t.Errorf("Expected 2 runs across elapsed interval, got %d", generator.PostCalls)
	}
}

func TestAutomationIntervalFallback(t *testing.T) {
	cfg := mocks.NewMockConfigRepository()
	svc := newAutomationService(mocks.NewMockGeneratorService(), cfg, time.Minute, zerolog.Nop())

	if got := svc.interval(context.Background(), models.ConfigKeyBlogGenerationInterval); got != defaultRunInterval {
		t.Errorf("Missing interval flag should fall back to default, got %v", got)
	}

	cfg.Set(models.ConfigKeyBlogGenerationInterval, "not-a-number")
	if got := svc.interval(context.Background(), models.ConfigKeyBlogGenerationInterval); got != defaultRunInterval {
		t.Errorf("Malformed interval should fall back to default, got %v", got)
	}

	cfg.Set(models.ConfigKeyBlogGenerationInterval, "15")
	if got := svc.interval(context.Background(), models.ConfigKeyBlogGenerationInterval); got != 15*time.Minute {
		t.Errorf("Expected 15m interval, got %v", got)
	}
}

func TestAutomationStartStop(t *testing.T) {
	generator := mocks.NewMockGeneratorService()
	cfg := mocks.NewMockConfigRepository()

	svc := newAutomationService(generator, cfg, 10*time.Millisecond, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		svc.StartProcessor(context.Background())
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	svc.StopProcessor()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Processor did not stop")
	}
}
