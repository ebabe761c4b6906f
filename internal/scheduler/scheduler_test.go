package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_FirstCycleRunsImmediately(t *testing.T) {
	matcher := mocks.NewMockBookingMatcher(t)
	s := New(matcher, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	matched := []*domain.Booking{
		{ID: "b1", CustomerID: "c1", Status: domain.BookingStatusMatched, CandidateIDs: []string{"w1", "w2"}},
	}
	matcher.EXPECT().MatchPending(mock.Anything).
		RunAndReturn(func(context.Context) ([]*domain.Booking, error) {
			cancel()
			return matched, nil
		}).Once()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("first dispatch cycle did not run before the first tick")
	}
}

func TestScheduler_CycleIsBoundedByInterval(t *testing.T) {
	matcher := mocks.NewMockBookingMatcher(t)
	s := New(matcher, 20*time.Millisecond, newTestLogger(t))

	var deadline time.Time
	matcher.EXPECT().MatchPending(mock.Anything).
		Run(func(ctx context.Context) { deadline, _ = ctx.Deadline() }).
		Return(nil, nil).Once()

	s.dispatch(context.Background())

	assert.False(t, deadline.IsZero())
	assert.WithinDuration(t, time.Now(), deadline, 20*time.Millisecond)
}

func TestScheduler_CountsConsecutiveFailures(t *testing.T) {
	matcher := mocks.NewMockBookingMatcher(t)
	s := New(matcher, time.Second, newTestLogger(t))

	matcher.EXPECT().MatchPending(mock.Anything).Return(nil, errors.New("db error")).Twice()
	s.dispatch(context.Background())
	s.dispatch(context.Background())
	assert.Equal(t, 2, s.failures)

	matcher.EXPECT().MatchPending(mock.Anything).Return(nil, nil).Once()
	s.dispatch(context.Background())
	assert.Zero(t, s.failures)
}

func TestScheduler_SkipsCancelledContext(t *testing.T) {
	matcher := mocks.NewMockBookingMatcher(t)
	s := New(matcher, time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.Start(ctx)

	matcher.AssertNotCalled(t, "MatchPending", mock.Anything)
}

func TestScheduler_MultipleTicks(t *testing.T) {
	matcher := mocks.NewMockBookingMatcher(t)
	s := New(matcher, 30*time.Millisecond, newTestLogger(t))

	matcher.EXPECT().MatchPending(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(matcher.Calls), 3)
}
