package domain

import (
	"encoding/json"
	"time"
)

type NotificationType string

const (
	NotificationBookingUpdate   NotificationType = "booking_update"
	NotificationWorkerArrival   NotificationType = "worker_arrival"
	NotificationOTPAlert        NotificationType = "otp_alert"
	NotificationJobCompletion   NotificationType = "job_completion"
	NotificationPaymentReceived NotificationType = "payment_received"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	BookingID *string          `json:"booking_id,omitempty"`
	Data      json.RawMessage  `json:"data,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
