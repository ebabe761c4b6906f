package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/rahi/internal/domain"
)

// OTPLimiter counts wrong OTP entries per booking in Redis. The counter
// expires window after the first failure.
type OTPLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

func NewOTPLimiter(client *redis.Client, max int, window time.Duration) *OTPLimiter {
	return &OTPLimiter{client: client, max: max, window: window}
}

func (l *OTPLimiter) Allow(ctx context.Context, bookingID string) error {
	v, err := l.client.Get(ctx, otpKey(bookingID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get otp attempts: %w", err)
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse otp attempts: %w", err)
	}
	if n >= l.max {
		return domain.ErrTooManyOTPAttempts
	}
	return nil
}

func (l *OTPLimiter) Fail(ctx context.Context, bookingID string) error {
	key := otpKey(bookingID)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("count otp attempt: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("expire otp attempts: %w", err)
		}
	}
	return nil
}

func (l *OTPLimiter) Reset(ctx context.Context, bookingID string) error {
	if err := l.client.Del(ctx, otpKey(bookingID)).Err(); err != nil {
		return fmt.Errorf("reset otp attempts: %w", err)
	}
	return nil
}

type attempts struct {
	count   int
	expires time.Time
}

// MemoryOTPLimiter is the single-process counterpart of OTPLimiter.
type MemoryOTPLimiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	items  map[string]attempts
	now    func() time.Time
}

func NewMemoryOTPLimiter(max int, window time.Duration) *MemoryOTPLimiter {
	return &MemoryOTPLimiter{
		max:    max,
		window: window,
		items:  make(map[string]attempts),
		now:    time.Now,
	}
}

func (l *MemoryOTPLimiter) Allow(_ context.Context, bookingID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.items[bookingID]
	if !ok || l.now().After(a.expires) {
		return nil
	}
	if a.count >= l.max {
		return domain.ErrTooManyOTPAttempts
	}
	return nil
}

func (l *MemoryOTPLimiter) Fail(_ context.Context, bookingID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	a, ok := l.items[bookingID]
	if !ok || now.After(a.expires) {
		a = attempts{expires: now.Add(l.window)}
	}
	a.count++
	l.items[bookingID] = a
	return nil
}

func (l *MemoryOTPLimiter) Reset(_ context.Context, bookingID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.items, bookingID)
	return nil
}
