// Package cleanup provides data retention for cases and the event outbox.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/andeslegal/cobranza/pkg/config"
	"github.com/andeslegal/cobranza/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes finished cases past the retention window
//   - Removes orphaned event rows and delivered events past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config       config.RetentionConfig
	caseService  *services.CaseService
	eventService *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg config.RetentionConfig,
	caseService *services.CaseService,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:       cfg,
		caseService:  caseService,
		eventService: eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"case_retention_days", s.config.CaseRetentionDays,
		"event_ttl", s.config.EventTTL(),
		"interval", s.config.Interval())
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one full cleanup pass.
func (s *Service) RunAll(ctx context.Context) {
	s.softDeleteOldCases(ctx)
	s.cleanupOrphanedEvents(ctx)
	s.cleanupOldEvents(ctx)
}

func (s *Service) softDeleteOldCases(ctx context.Context) {
	count, err := s.caseService.SoftDeleteOldFinishedCases(ctx, s.config.CaseRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete finished cases failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted finished cases", "count", count)
	}
}

func (s *Service) cleanupOrphanedEvents(ctx context.Context) {
	count, err := s.eventService.CleanupOrphanedEvents(ctx)
	if err != nil {
		slog.Error("Retention: orphaned event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed orphaned events", "count", count)
	}
}

func (s *Service) cleanupOldEvents(ctx context.Context) {
	count, err := s.eventService.CleanupOldEvents(ctx, s.config.EventTTL())
	if err != nil {
		slog.Error("Retention: old event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed delivered events past TTL", "count", count)
	}
}
