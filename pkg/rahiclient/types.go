package rahiclient

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type User struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Language string `json:"language"`
}

type Token struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	User      User   `json:"user"`
}

type Category struct {
	ID           string          `json:"id"`
	NameEn       string          `json:"name_en"`
	NameHi       string          `json:"name_hi"`
	DefaultPrice decimal.Decimal `json:"default_price"`
}

type Booking struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	WorkerID      *string         `json:"worker_id"`
	CategoryID    string          `json:"category_id"`
	Address       string          `json:"address"`
	BasePrice     decimal.Decimal `json:"base_price"`
	WorkerEarning decimal.Decimal `json:"worker_earning"`
	OTP           string          `json:"otp,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
}

type NewBooking struct {
	CategoryID  string           `json:"category_id"`
	Description string           `json:"description,omitempty"`
	Address     string           `json:"address"`
	City        string           `json:"city,omitempty"`
	BasePrice   *decimal.Decimal `json:"base_price,omitempty"`
	IsEmergency bool             `json:"is_emergency,omitempty"`
}

type HistoryEntry struct {
	From      string `json:"from"`
	To        string `json:"to"`
	WorkerID  string `json:"worker_id"`
	ActorID   string `json:"actor_id"`
	CreatedAt string `json:"created_at"`
}

type Worker struct {
	UserID        string          `json:"user_id"`
	Status        string          `json:"status"`
	Busy          bool            `json:"busy"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	TotalJobs     int             `json:"total_jobs"`
}

type Balance struct {
	WorkerID string          `json:"worker_id"`
	Balance  decimal.Decimal `json:"balance"`
}

type Transaction struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"transaction_type"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
}

type Notification struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Read      bool            `json:"read"`
	Data      json.RawMessage `json:"data,omitempty"`
	CreatedAt string          `json:"created_at"`
}

type Notifications struct {
	Items  []Notification `json:"items"`
	Unread int            `json:"unread"`
}
