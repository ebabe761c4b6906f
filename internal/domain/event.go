package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingEvent is published after every successful lifecycle transition.
// OTP is only populated on acceptance so the customer can relay it to the worker.
type BookingEvent struct {
	ID           string          `json:"id"`
	BookingID    string          `json:"booking_id"`
	CustomerID   string          `json:"customer_id"`
	WorkerID     string          `json:"worker_id,omitempty"`
	CandidateIDs []string        `json:"candidate_ids,omitempty"`
	CategoryID   string          `json:"category_id"`
	From         BookingStatus   `json:"from"`
	To           BookingStatus   `json:"to"`
	ActorID      string          `json:"actor_id,omitempty"`
	OTP          string          `json:"otp,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	At           time.Time       `json:"at"`
}

func (e BookingEvent) RoutingKey() string {
	return "booking." + string(e.To)
}

// HistoryEntry is one persisted row of a booking's transition log.
type HistoryEntry struct {
	ID        string        `json:"id"`
	BookingID string        `json:"booking_id"`
	From      BookingStatus `json:"from"`
	To        BookingStatus `json:"to"`
	WorkerID  string        `json:"worker_id,omitempty"`
	ActorID   string        `json:"actor_id"`
	CreatedAt time.Time     `json:"created_at"`
}
