package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/rahi/internal/domain"
)

// Stable machine-readable error codes. Messages may change, codes may not.
const (
	CodeValidation        = "validation_error"
	CodeUnauthorized      = "unauthorized"
	CodeForbidden         = "forbidden"
	CodeNotFound          = "not_found"
	CodeConflict          = "conflict"
	CodeIllegalTransition = "illegal_transition"
	CodeAlreadyAssigned   = "already_assigned"
	CodeInvalidOTP        = "invalid_otp"
	CodeTooManyAttempts   = "too_many_attempts"
	CodeInsufficient      = "insufficient_balance"
	CodeBelowMinimum      = "below_minimum"
	CodeInvalidUpiID      = "invalid_upi_id"
	CodeUnavailable       = "unavailable"
	CodeInternal          = "internal_error"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type UserResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	Language       string `json:"language"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type BookingResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	WorkerID      *string         `json:"worker_id"`
	CategoryID    string          `json:"category_id"`
	Description   string          `json:"description"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	Latitude      *float64        `json:"latitude,omitempty"`
	Longitude     *float64        `json:"longitude,omitempty"`
	BasePrice     decimal.Decimal `json:"base_price"`
	WorkerEarning decimal.Decimal `json:"worker_earning"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	IsEmergency   bool            `json:"is_emergency"`
	IsInstant     bool            `json:"is_instant"`
	ScheduledAt   *string         `json:"scheduled_at,omitempty"`
	OTP           string          `json:"otp,omitempty"`
	OTPVerified   bool            `json:"otp_verified"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
	StartedAt     *string         `json:"started_at,omitempty"`
	CompletedAt   *string         `json:"completed_at,omitempty"`
	UpdatedAt     string          `json:"updated_at"`
}

type HistoryResponse struct {
	From      string `json:"from,omitempty"`
	To        string `json:"to"`
	WorkerID  string `json:"worker_id,omitempty"`
	ActorID   string `json:"actor_id"`
	CreatedAt string `json:"created_at"`
}

type WorkerResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Status        string          `json:"status"`
	Busy          bool            `json:"busy"`
	ActiveJobs    int             `json:"active_jobs"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	TotalJobs     int             `json:"total_jobs"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	Rating        float64         `json:"rating"`
	Bio           string          `json:"bio"`
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	BookingID   *string         `json:"booking_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"transaction_type"`
	Status      string          `json:"status"`
	UpiID       *string         `json:"upi_id,omitempty"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
}

type BalanceResponse struct {
	WorkerID string          `json:"worker_id"`
	Balance  decimal.Decimal `json:"balance"`
}

type NotificationsResponse struct {
	Items  []*domain.Notification `json:"items"`
	Unread int                    `json:"unread"`
}

type CountResponse struct {
	Count int `json:"count"`
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		FullName:       u.FullName,
		Phone:          u.Phone,
		Role:           string(u.Role),
		Language:       string(u.Language),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      formatTime(u.CreatedAt),
	}
}

// ToBookingResponse never carries the OTP. Use WithOTP for the booking's customer.
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		WorkerID:      b.WorkerID,
		CategoryID:    b.CategoryID,
		Description:   b.Description,
		Address:       b.Address,
		City:          b.City,
		Latitude:      b.Latitude,
		Longitude:     b.Longitude,
		BasePrice:     b.BasePrice,
		WorkerEarning: b.WorkerEarning,
		TotalPrice:    b.TotalPrice,
		IsEmergency:   b.IsEmergency,
		IsInstant:     b.IsInstant,
		ScheduledAt:   formatTimePtr(b.ScheduledAt),
		OTPVerified:   b.OTPVerified,
		Status:        string(b.Status),
		CreatedAt:     formatTime(b.CreatedAt),
		StartedAt:     formatTimePtr(b.StartedAt),
		CompletedAt:   formatTimePtr(b.CompletedAt),
		UpdatedAt:     formatTime(b.UpdatedAt),
	}
}

// WithOTP exposes the start code while it is still useful.
func (r BookingResponse) WithOTP(b *domain.Booking) BookingResponse {
	if b.Status == domain.BookingStatusAccepted && !b.OTPVerified {
		r.OTP = b.OTPStart
	}
	return r
}

func ToHistoryResponse(h *domain.HistoryEntry) HistoryResponse {
	return HistoryResponse{
		From:      string(h.From),
		To:        string(h.To),
		WorkerID:  h.WorkerID,
		ActorID:   h.ActorID,
		CreatedAt: formatTime(h.CreatedAt),
	}
}

func ToWorkerResponse(v *domain.WorkerView) WorkerResponse {
	p := v.Profile
	return WorkerResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		Status:        v.DisplayStatus(),
		Busy:          v.Busy(),
		ActiveJobs:    v.ActiveJobs,
		WalletBalance: p.WalletBalance,
		TotalJobs:     p.TotalJobs,
		TotalEarnings: p.TotalEarnings,
		Rating:        p.Rating,
		Bio:           p.Bio,
	}
}

func ToTransactionResponse(t *domain.WalletTransaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		BookingID:   t.BookingID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Status:      string(t.Status),
		UpiID:       t.UpiID,
		Description: t.Description,
		CreatedAt:   formatTime(t.CreatedAt),
	}
}
