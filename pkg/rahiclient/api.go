package rahiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

func (c *Client) Register(ctx context.Context, fullName, phone, role, language string) (*Token, error) {
	var out Token
	body := map[string]string{"full_name": fullName, "phone": phone, "role": role, "language": language}
	if err := c.do(ctx, http.MethodPost, "/api/users", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, phone string) (*Token, error) {
	var out Token
	if err := c.do(ctx, http.MethodPost, "/api/auth/token", map[string]string{"phone": phone}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBooking(ctx context.Context, b NewBooking) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings", b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBookings passes filters such as status, unassigned and limit through as query parameters.
func (c *Client) ListBookings(ctx context.Context, filters map[string]string) ([]Booking, error) {
	var out []Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings"+query(filters), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBooking(ctx context.Context, id string) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, http.MethodGet, bookingPath(id, ""), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) History(ctx context.Context, id string) ([]HistoryEntry, error) {
	var out []HistoryEntry
	if err := c.do(ctx, http.MethodGet, bookingPath(id, "/history"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Accept(ctx context.Context, id string) (*Booking, error) {
	return c.transition(ctx, id, "/accept", nil)
}

func (c *Client) Reject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, bookingPath(id, "/reject"), nil, nil)
}

func (c *Client) Start(ctx context.Context, id, otp string) (*Booking, error) {
	return c.transition(ctx, id, "/start", map[string]string{"otp": otp})
}

func (c *Client) Complete(ctx context.Context, id string) (*Booking, error) {
	return c.transition(ctx, id, "/complete", nil)
}

func (c *Client) Cancel(ctx context.Context, id string) (*Booking, error) {
	return c.transition(ctx, id, "/cancel", nil)
}

func (c *Client) transition(ctx context.Context, id, action string, body any) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, http.MethodPost, bookingPath(id, action), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func bookingPath(id, suffix string) string {
	return "/api/bookings/" + url.PathEscape(id) + suffix
}

func (c *Client) CreateWorkerProfile(ctx context.Context, bio string) (*Worker, error) {
	var out Worker
	if err := c.do(ctx, http.MethodPost, "/api/worker-profiles", map[string]string{"bio": bio}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetWorkerStatus(ctx context.Context, userID, status string) (*Worker, error) {
	var out Worker
	path := "/api/worker-profiles/" + url.PathEscape(userID) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, map[string]string{"status": status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Balance(ctx context.Context) (*Balance, error) {
	var out Balance
	if err := c.do(ctx, http.MethodGet, "/api/wallet/balance", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Transactions(ctx context.Context, limit int) ([]Transaction, error) {
	var out []Transaction
	q := ""
	if limit > 0 {
		q = query(map[string]string{"limit": strconv.Itoa(limit)})
	}
	if err := c.do(ctx, http.MethodGet, "/api/wallet/transactions"+q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Withdraw(ctx context.Context, amount decimal.Decimal, upiID string) (*Transaction, error) {
	var out Transaction
	body := map[string]any{"amount": amount, "upi_id": upiID}
	if err := c.do(ctx, http.MethodPost, "/api/wallet/withdraw", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Notifications(ctx context.Context) (*Notifications, error) {
	var out Notifications
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MarkAllRead(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/notifications/read-all", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}
