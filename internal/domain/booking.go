package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusMatched    BookingStatus = "matched"
	BookingStatusAccepted   BookingStatus = "accepted"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// NonTerminalStatuses can still be cancelled.
var NonTerminalStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusMatched,
	BookingStatusAccepted,
	BookingStatusInProgress,
}

// ActiveStatuses are the statuses in which a worker is bound and working the job.
var ActiveStatuses = []BookingStatus{BookingStatusAccepted, BookingStatusInProgress}

var allowedTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingStatusPending: {
		BookingStatusMatched:   true,
		BookingStatusAccepted:  true,
		BookingStatusCancelled: true,
	},
	BookingStatusMatched: {
		BookingStatusAccepted:  true,
		BookingStatusCancelled: true,
	},
	BookingStatusAccepted: {
		BookingStatusInProgress: true,
		BookingStatusCancelled:  true,
	},
	BookingStatusInProgress: {
		BookingStatusCompleted: true,
		BookingStatusCancelled: true,
	},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	st := BookingStatus(s)
	if _, ok := allowedTransitions[st]; !ok {
		return "", ErrValidation
	}
	return st, nil
}

func CanTransition(from, to BookingStatus) bool {
	return allowedTransitions[from][to]
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// HasWorker reports whether a booking in this status must carry a worker id.
func (s BookingStatus) HasWorker() bool {
	switch s {
	case BookingStatusAccepted, BookingStatusInProgress, BookingStatusCompleted:
		return true
	}
	return false
}

type Booking struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	WorkerID      *string         `json:"worker_id"`
	CategoryID    string          `json:"category_id"`
	Description   string          `json:"description"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	Latitude      *float64        `json:"latitude"`
	Longitude     *float64        `json:"longitude"`
	BasePrice     decimal.Decimal `json:"base_price"`
	WorkerEarning decimal.Decimal `json:"worker_earning"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	IsEmergency   bool            `json:"is_emergency"`
	IsInstant     bool            `json:"is_instant"`
	ScheduledAt   *time.Time      `json:"scheduled_at"`
	OTPStart      string          `json:"-"`
	OTPVerified   bool            `json:"otp_verified"`
	CandidateIDs  []string        `json:"candidate_ids"`
	Status        BookingStatus   `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	StartedAt     *time.Time      `json:"started_at"`
	CompletedAt   *time.Time      `json:"completed_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (b *Booking) AssignedTo(workerID string) bool {
	return b.WorkerID != nil && *b.WorkerID == workerID
}

// Open reports whether any worker may still take the job.
func (b *Booking) Open() bool {
	return b.WorkerID == nil && IsOpenStatus(b.Status)
}

func IsOpenStatus(s BookingStatus) bool {
	return s == BookingStatusPending || s == BookingStatusMatched
}

func (b *Booking) Worker() string {
	if b.WorkerID == nil {
		return ""
	}
	return *b.WorkerID
}

type CreateBookingInput struct {
	CustomerID  string
	CategoryID  string
	Description string
	Address     string
	City        string
	Latitude    *float64
	Longitude   *float64
	BasePrice   decimal.Decimal
	IsEmergency bool
	IsInstant   bool
	ScheduledAt *time.Time
}

// BookingFilter is the collection query accepted by the booking store.
// Zero values mean "no constraint".
type BookingFilter struct {
	Status      []BookingStatus
	CustomerID  string
	WorkerID    string
	Participant string
	Unassigned  bool
	Limit       int
}

// Transition is a conditional update: it applies only while the stored booking
// is still in one of From and satisfies the worker constraint.
type Transition struct {
	BookingID         string
	From              []BookingStatus
	To                BookingStatus
	ActorID           string
	At                time.Time
	RequireUnassigned bool
	RequireWorker     string
	AssignWorker      string
	ClearWorker       bool
	VerifyOTP         bool
	ClearOTP          bool
	Candidates        []string
}
