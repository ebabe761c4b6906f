package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateUserRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Role           string `json:"role"`
	Language       string `json:"language"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type TokenRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type CreateBookingRequest struct {
	CategoryID  string           `json:"category_id" binding:"required"`
	Description string           `json:"description"`
	Address     string           `json:"address" binding:"required"`
	City        string           `json:"city"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
	BasePrice   *decimal.Decimal `json:"base_price"`
	IsEmergency bool             `json:"is_emergency"`
	IsInstant   bool             `json:"is_instant"`
	ScheduledAt *time.Time       `json:"scheduled_at"`
}

type StartBookingRequest struct {
	OTP string `json:"otp" binding:"required"`
}

type CreateProfileRequest struct {
	// UserID is honoured for admins only; everyone else creates their own profile.
	UserID string `json:"user_id"`
	Bio    string `json:"bio"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
	UpiID  string          `json:"upi_id" binding:"required"`
}

type BonusRequest struct {
	WorkerID    string          `json:"worker_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}
