package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/rahi/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingMatcher interface {
	MatchPending(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler is the dispatch loop: pending bookings are offered to free
// online workers of the same category. The first cycle runs right away.
type Scheduler struct {
	matcher  bookingMatcher
	interval time.Duration
	logger   logger.Logger

	failures int
}

func New(matcher bookingMatcher, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{
		matcher:  matcher,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("dispatch loop started",
		logger.Duration("interval", s.interval),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.dispatch(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info("dispatch loop stopped")
			return
		case <-ticker.C:
		}
	}
}

// dispatch runs one matching cycle, bounded by the interval so cycles never overlap.
func (s *Scheduler) dispatch(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	cycleCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	started := time.Now()
	matched, err := s.matcher.MatchPending(cycleCtx)
	if err != nil {
		s.failures++
		s.logger.Error("dispatch cycle failed",
			logger.String("error", err.Error()),
			logger.Int("consecutive_failures", s.failures),
		)
		return
	}
	if s.failures > 0 {
		s.logger.Info("dispatch recovered", logger.Int("after_failures", s.failures))
		s.failures = 0
	}

	for _, b := range matched {
		s.logger.Info("booking offered",
			logger.String("booking_id", b.ID),
			logger.String("category_id", b.CategoryID),
			logger.Int("candidates", len(b.CandidateIDs)),
		)
	}
	s.logger.Debug("dispatch cycle done",
		logger.Int("matched", len(matched)),
		logger.Duration("took", time.Since(started)),
	)
}
