package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ai-blog-api/internal/models"
	"github.com/ai-blog-api/internal/repository"
)

// defaultRunInterval applies when an interval flag is missing or malformed
const defaultRunInterval = 60 * time.Minute

// automationService invokes the blog and comment pipelines on the intervals
// stored in system configuration. Last-run marks are in-memory only; a
// restart resets the schedule.
type automationService struct {
	generator  GeneratorService
	configRepo repository.ConfigRepository
	log        zerolog.Logger
	tick       time.Duration

	ctx     context.Context
	cancel  context.CancelFunc
	running bool
	mu      sync.Mutex

	lastBlogRun    time.Time
	lastCommentRun time.Time
}

// newAutomationService creates a new AutomationService
func newAutomationService(generator GeneratorService, configRepo repository.ConfigRepository, tick time.Duration, log zerolog.Logger) *automationService {
	if tick <= 0 {
		tick = time.Minute
	}
	return &automationService{
		generator:  generator,
		configRepo: configRepo,
		tick:       tick,
		log:        log.With().Str("service", "automation").Logger(),
	}
}

// StartProcessor runs the automation loop until the context is cancelled or
// StopProcessor is called
func (s *automationService) StartProcessor(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.log.Info().Dur("tick", s.tick).Msg("Automation processor started")

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.log.Info().Msg("Automation processor stopping")
			return
		case <-ticker.C:
			s.runDue(s.ctx)
		}
	}
}

// StopProcessor stops the automation loop
func (s *automationService) StopProcessor() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.cancel()
	s.running = false
	s.log.Info().Msg("Automation processor stopped")
}

// runDue invokes each pipeline whose interval has elapsed. The pipelines
// re-check their own enable flags, so a flag flipped off between ticks still
// results in a no-op.
func (s *automationService) runDue(ctx context.Context) {
	now := time.Now()

	if s.due(ctx, models.ConfigKeyBlogGenerationEnabled, models.ConfigKeyBlogGenerationInterval, s.lastBlogRun, now) {
		s.lastBlogRun = now
		if _, err := s.generator.GeneratePost(ctx); err != nil {
			s.reportRunError("blog generation", err)
		}
	}

	if s.due(ctx, models.ConfigKeyCommentBotEnabled, models.ConfigKeyCommentBotInterval, s.lastCommentRun, now) {
		s.lastCommentRun = now
		if _, err := s.generator.GenerateComment(ctx); err != nil {
			s.reportRunError("comment bot", err)
		}
	}
}

// due reports whether a pipeline is enabled and its interval has elapsed
func (s *automationService) due(ctx context.Context, enabledKey, intervalKey string, lastRun, now time.Time) bool {
	enabled, err := s.configRepo.Get(ctx, enabledKey)
	if err != nil {
		s.log.Error().Err(err).Str("key", enabledKey).Msg("Failed to read automation flag")
		return false
	}
	if !enabled.Enabled() {
		return false
	}

	return lastRun.IsZero() || now.Sub(lastRun) >= s.interval(ctx, intervalKey)
}

// interval reads a pipeline's run interval in minutes
func (s *automationService) interval(ctx context.Context, key string) time.Duration {
	cfg, err := s.configRepo.Get(ctx, key)
	if err != nil || cfg == nil {
		return defaultRunInterval
	}

	minutes, err := strconv.Atoi(cfg.Value)
	if err != nil || minutes <= 0 {
		return defaultRunInterval
	}
	return time.Duration(minutes) * time.Minute
}

func (s *automationService) reportRunError(pipeline string, err error) {
	var skipped *PipelineSkipped
	if errors.As(err, &skipped) {
		s.log.Debug().Str("pipeline", pipeline).Str("reason", skipped.Reason).Msg("Scheduled run skipped")
		return
	}
	s.log.Error().Err(err).Str("pipeline", pipeline).Msg("Scheduled run failed")
}
