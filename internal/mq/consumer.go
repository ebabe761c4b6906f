package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// EventHandler consumes booking events. Returning domain.ErrValidation drops the
// message; any other error requeues it.
type EventHandler interface {
	HandleEvent(ctx context.Context, e domain.BookingEvent) error
}

type Consumer struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	queue    string
	keys     []string
	handler  EventHandler
	logger   logger.Logger
}

func NewConsumer(url, exchange, queue string, keys []string, handler EventHandler, logger logger.Logger) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	q, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	for _, rk := range keys {
		if err := ch.QueueBind(q.Name, rk, exchange, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("bind %s: %w", rk, err)
		}
	}
	return &Consumer{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		queue:    q.Name,
		keys:     keys,
		handler:  handler,
		logger:   logger,
	}, nil
}

// Run blocks until ctx is done or the broker closes the delivery channel.
func (c *Consumer) Run(ctx context.Context) error {
	msgs, err := c.ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}

	c.logger.Info("event consumer started",
		logger.String("queue", c.queue),
		logger.Any("keys", c.keys),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("delivery channel closed")
			}
			c.deliver(ctx, d)
		}
	}
}

func (c *Consumer) deliver(ctx context.Context, d amqp.Delivery) {
	var e domain.BookingEvent
	if err := json.Unmarshal(d.Body, &e); err != nil {
		c.logger.Error("malformed booking event dropped",
			logger.String("routing_key", d.RoutingKey),
			logger.String("error", err.Error()),
		)
		_ = d.Nack(false, false)
		return
	}

	err := c.handler.HandleEvent(ctx, e)
	switch {
	case err == nil:
		_ = d.Ack(false)
	case errors.Is(err, domain.ErrValidation):
		c.logger.Warn("invalid booking event dropped",
			logger.String("booking_id", e.BookingID),
			logger.String("error", err.Error()),
		)
		_ = d.Ack(false)
	default:
		c.logger.Error("booking event handling failed, requeueing",
			logger.String("booking_id", e.BookingID),
			logger.String("error", err.Error()),
		)
		_ = d.Nack(false, !d.Redelivered)
	}
}

func (c *Consumer) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
