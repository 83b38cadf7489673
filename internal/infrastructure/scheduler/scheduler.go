package scheduler

import (
	"context"
	"sync"
	"time"

	"fleet_maintenance/internal/usecase"

	"github.com/rs/zerolog"
)

// Runner runs one reconciliation batch.
type Runner interface {
	RunOnce(ctx context.Context) (usecase.RunReport, error)
}

// Scheduler drives a Runner: one warm-up run shortly after Start, then one run per interval.
//
// Stop prevents further runs and blocks until an in-flight batch has finished; a batch
// that has started is never cancelled half-way.
type Scheduler struct {
	runner   Runner
	interval time.Duration
	warmup   time.Duration
	log      zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(runner Runner, interval, warmup time.Duration, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		warmup:   warmup,
		log:      log.With().Str("component", "scheduler").Logger(),
	}
}

// Start launches the loop. Calling Start on a running scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	s.log.Info().Dur("interval", s.interval).Dur("warmup", s.warmup).Msg("reconciliation scheduler started")
	go s.loop(ctx, s.done)
}

// Stop cancels future ticks and waits for the loop to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.log.Info().Msg("reconciliation scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	warmup := time.NewTimer(s.warmup)
	defer warmup.Stop()
	select {
	case <-ctx.Done():
		return
	case <-warmup.C:
	}
	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	// The batch outlives Stop; only the next tick is cancelled.
	report, err := s.runner.RunOnce(context.WithoutCancel(ctx))
	if err != nil {
		s.log.Error().Err(err).Str("run_id", report.RunID).Msg("reconciliation run failed")
	}
}
