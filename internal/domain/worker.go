package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type WorkerStatus string

const (
	WorkerStatusOnline  WorkerStatus = "online"
	WorkerStatusOffline WorkerStatus = "offline"
)

func ParseWorkerStatus(s string) (WorkerStatus, error) {
	switch WorkerStatus(s) {
	case WorkerStatusOnline, WorkerStatusOffline:
		return WorkerStatus(s), nil
	}
	return "", ErrValidation
}

// WorkerProfile.WalletBalance is a cache of the ledger sum and is reconciled, never trusted.
type WorkerProfile struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Status        WorkerStatus    `json:"status"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	TotalJobs     int             `json:"total_jobs"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	Rating        float64         `json:"rating"`
	Bio           string          `json:"bio"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// WorkerView is a profile with the derived busy label.
type WorkerView struct {
	Profile    *WorkerProfile
	ActiveJobs int
}

func (v WorkerView) Busy() bool {
	return v.ActiveJobs > 0
}

// DisplayStatus is what dashboards show: busy overrides online.
func (v WorkerView) DisplayStatus() string {
	if v.Profile.Status == WorkerStatusOnline && v.Busy() {
		return "busy"
	}
	return string(v.Profile.Status)
}
