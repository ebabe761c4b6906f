package mq

import (
	"context"
	"errors"
	"sync"

	"github.com/stpnv0/rahi/internal/domain"
	"github.com/wb-go/wbf/logger"
)

var ErrPublisherClosed = errors.New("publisher is closed")

// LocalPublisher hands events to an in-process handler when no broker is configured.
// Handling runs in the background, detached from the request context.
type LocalPublisher struct {
	handler EventHandler
	logger  logger.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewLocalPublisher(handler EventHandler, logger logger.Logger) *LocalPublisher {
	return &LocalPublisher{handler: handler, logger: logger}
}

func (p *LocalPublisher) Publish(ctx context.Context, e domain.BookingEvent) error {
	// Add под тем же мьютексом, что и closed: Close не начнёт Wait раньше
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPublisherClosed
	}
	p.wg.Add(1)
	p.mu.Unlock()

	detached := context.WithoutCancel(ctx)
	go func() {
		defer p.wg.Done()
		if err := p.handler.HandleEvent(detached, e); err != nil {
			p.logger.Error("local event handling failed",
				logger.String("booking_id", e.BookingID),
				logger.String("key", e.RoutingKey()),
				logger.String("error", err.Error()),
			)
		}
	}()
	return nil
}

// Close rejects new events and waits for in-flight handlers.
func (p *LocalPublisher) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.wg.Wait()
	return nil
}
