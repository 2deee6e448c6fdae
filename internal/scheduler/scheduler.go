package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/stockdesk/dashboard/internal/config"
	"github.com/stockdesk/dashboard/internal/service/digest"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	digestSvc *digest.Service
	cfg       config.AlertsConfig
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.AlertsConfig, digestSvc *digest.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:      cron.New(),
		digestSvc: digestSvc,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start registers the digest job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runDigest); err != nil {
		s.logger.Error("failed to schedule low stock digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDigest() {
	s.logger.Info("running low stock digest")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.digestSvc.Run(ctx, time.Now()); err != nil {
		s.logger.Error("low stock digest failed", zap.Error(err))
		return
	}
	s.logger.Info("low stock digest completed")
}
