package application

import (
	"context"
	"errors"
	"time"
)

// AutoRunScheduler drives run-missing cycles on a fixed cadence. A tick that
// lands while a cycle is still in flight is skipped, not queued.
type AutoRunScheduler struct {
	dashboard DashboardService
	interval  time.Duration
	logger    Logger
	stop      chan struct{}
}

func NewAutoRunScheduler(dashboard DashboardService, interval time.Duration, logger Logger) *AutoRunScheduler {
	return &AutoRunScheduler{
		dashboard: dashboard,
		interval:  interval,
		logger:    logger,
		stop:      make(chan struct{}),
	}
}

func (s *AutoRunScheduler) Init() error {
	return nil
}

func (s *AutoRunScheduler) Run(ctx context.Context) {
	s.logger.Info("autorun scheduler started", "interval", s.interval.String())
	s.cycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.cycle(ctx)
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *AutoRunScheduler) Stop() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	s.logger.Info("autorun scheduler stopped")
}

func (s *AutoRunScheduler) cycle(ctx context.Context) {
	snap, err := s.dashboard.RunMissing(ctx)
	if errors.Is(err, ErrCycleInFlight) {
		s.logger.Debug("previous cycle still running, skipping tick")
		return
	}
	if err != nil {
		s.logger.Error("scheduled cycle failed", "error", err.Error())
		return
	}
	s.logger.Debug("scheduled cycle finished", "games", len(snap.Games), "triggered", len(snap.Triggered))
}
