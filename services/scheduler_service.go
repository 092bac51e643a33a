package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/johpaz/apiGestion-api/models"
)

// DefaultSweepInterval is how often the scheduler runs both sweeps.
const DefaultSweepInterval = 3600 * time.Second

// AlertSweeper is the slice of the alert engine the scheduler drives.
type AlertSweeper interface {
	SweepRecurringAlerts(ctx context.Context) ([]models.Alert, error)
	SweepQueenAlerts(ctx context.Context) ([]models.Alert, error)
}

// SchedulerService drives the alert engine's sweeps: once immediately on
// Start and then on a fixed cadence until Stop. It is constructed once at
// boot and owned by main; Start is idempotent and sweep failures never stop
// the ticker.
type SchedulerService struct {
	alerts   AlertSweeper
	interval time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

func NewSchedulerService(alerts AlertSweeper, logger *zap.Logger) *SchedulerService {
	return &SchedulerService{
		alerts:   alerts,
		interval: DefaultSweepInterval,
		logger:   logger.Named("scheduler"),
	}
}

// Start launches the sweep loop. Calling it while running is a logged no-op.
func (s *SchedulerService) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Info("Scheduler already running")
		return
	}
	s.running = true
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	s.logger.Info("Starting recurring and queen alert scheduler",
		zap.Duration("intervalo", s.interval))
	go s.run(done)
}

// Stop prevents future ticks. An in-flight sweep is not interrupted.
// Idempotent.
func (s *SchedulerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	close(s.done)
	s.running = false
	s.logger.Info("Scheduler stopped")
}

// IsActive reports whether the sweep loop is armed.
func (s *SchedulerService) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// ForceSweep runs one sweep cycle right now, independent of the timer state,
// and returns how many alerts were generated. Unlike the timer path, errors
// are propagated so an administrative caller sees them.
func (s *SchedulerService) ForceSweep(ctx context.Context) (int, error) {
	s.logger.Info("Forced sweep requested")
	recurring, err := s.alerts.SweepRecurringAlerts(ctx)
	if err != nil {
		return 0, err
	}
	queen, err := s.alerts.SweepQueenAlerts(ctx)
	if err != nil {
		return len(recurring), err
	}
	return len(recurring) + len(queen), nil
}

func (s *SchedulerService) run(done chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// First sweep fires immediately on start.
	s.sweep()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *SchedulerService) sweep() {
	ctx := context.Background()

	recurring, err := s.alerts.SweepRecurringAlerts(ctx)
	if err != nil {
		s.logger.Error("Recurring alert sweep failed", zap.Error(err))
	}

	queen, err := s.alerts.SweepQueenAlerts(ctx)
	if err != nil {
		s.logger.Error("Queen alert sweep failed", zap.Error(err))
	}

	if len(recurring)+len(queen) > 0 {
		s.logger.Info("Sweep cycle completed",
			zap.Int("recurrentes", len(recurring)),
			zap.Int("reina", len(queen)))
	}
}
