package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionEarning    TransactionType = "earning"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionBonus      TransactionType = "bonus"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

type WalletTransaction struct {
	ID          string            `json:"id"`
	WorkerID    string            `json:"worker_id"`
	BookingID   *string           `json:"booking_id"`
	Amount      decimal.Decimal   `json:"amount"`
	Type        TransactionType   `json:"transaction_type"`
	Status      TransactionStatus `json:"status"`
	UpiID       *string           `json:"upi_id"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"created_at"`
}

type EarningsSummary struct {
	Balance decimal.Decimal `json:"balance"`
	Today   decimal.Decimal `json:"today"`
	Week    decimal.Decimal `json:"week"`
}

// ValidUpiID accepts "handle@provider" with both parts non-empty.
func ValidUpiID(id string) bool {
	local, provider, ok := strings.Cut(strings.TrimSpace(id), "@")
	if !ok || local == "" || provider == "" {
		return false
	}
	return !strings.ContainsAny(local+provider, "@ ")
}

// SumCompleted is the authoritative balance over a set of ledger entries.
func SumCompleted(txs []*WalletTransaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		if t.Status == TransactionCompleted {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// Reconciliation reports how far the cached profile balance had drifted from the ledger.
type Reconciliation struct {
	WorkerID string          `json:"worker_id"`
	Cached   decimal.Decimal `json:"cached"`
	Actual   decimal.Decimal `json:"actual"`
	Drift    decimal.Decimal `json:"drift"`
}
