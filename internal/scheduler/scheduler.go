// Package scheduler runs the nightly maintenance jobs.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"kriah-trainer/backend/config"
	"kriah-trainer/backend/internal/service"
)

const jobTimeout = 5 * time.Minute

// Scheduler owns the background job loop.
type Scheduler struct {
	cfg       *config.Config
	scheduler *gocron.Scheduler
	svc       *service.Service
	logger    *zap.Logger
}

// New creates a Scheduler. Jobs run in the server's local time zone.
func New(cfg *config.Config, svc *service.Service, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cfg:       cfg,
		scheduler: gocron.NewScheduler(time.Local),
		svc:       svc,
		logger:    logger,
	}
}

// Start registers the jobs and begins running them asynchronously.
func (s *Scheduler) Start() error {
	if !s.cfg.Jobs.ReconcileEnabled {
		s.logger.Info("stats reconciliation job disabled")
		return nil
	}

	at := s.cfg.Jobs.ReconcileAt
	if at == "" {
		at = "03:30"
	}
	if _, err := s.scheduler.Every(1).Day().At(at).Do(s.reconcileStats); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Info("scheduler started", zap.String("reconcile_at", at))
	return nil
}

// Stop terminates the job loop, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// reconcileStats recomputes every user's streak and total counters from the
// raw session rows, repairing any drift from failed incremental updates.
func (s *Scheduler) reconcileStats() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	if err := s.svc.Session.ReconcileAll(ctx); err != nil {
		s.logger.Error("stats reconciliation finished with errors", zap.Error(err))
		return
	}
	s.logger.Info("stats reconciliation finished", zap.Duration("took", time.Since(start)))
}
