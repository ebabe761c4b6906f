package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

// stubHandler answers only the routes under test; anything else panics on the nil interface.
type stubHandler struct {
	Handler
}

func (stubHandler) ListCategories(c *ginext.Context) { c.String(http.StatusOK, "categories") }
func (stubHandler) ListUsers(c *ginext.Context)      { c.String(http.StatusOK, "users") }
func (stubHandler) CreateBooking(c *ginext.Context)  { c.String(http.StatusCreated, "booking") }
func (stubHandler) AcceptBooking(c *ginext.Context)  { c.String(http.StatusOK, "accepted") }

type staticParser map[string]domain.Actor

func (p staticParser) Parse(token string) (domain.Actor, error) {
	a, ok := p[token]
	if !ok {
		return domain.Actor{}, errors.New("unknown token")
	}
	return a, nil
}

func newTestRouter() http.Handler {
	parser := staticParser{
		"customer": {ID: "c1", Role: domain.RoleCustomer},
		"worker":   {ID: "w1", Role: domain.RoleWorker},
		"admin":    {ID: "a1", Role: domain.RoleAdmin},
	}
	pass := func(c *ginext.Context) { c.Next() }

	return InitRouter("test", stubHandler{}, Middlewares{
		Auth:        middleware.Auth(parser),
		Idempotency: pass,
		Timeout:     pass,
	})
}

func TestInitRouter(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"public categories", http.MethodGet, "/api/categories", "", http.StatusOK},
		{"protected without token", http.MethodGet, "/api/users", "", http.StatusUnauthorized},
		{"admin only", http.MethodGet, "/api/users", "customer", http.StatusForbidden},
		{"admin lists users", http.MethodGet, "/api/users", "admin", http.StatusOK},
		{"customer books", http.MethodPost, "/api/bookings", "customer", http.StatusCreated},
		{"worker cannot book", http.MethodPost, "/api/bookings", "worker", http.StatusForbidden},
		{"worker accepts", http.MethodPost, "/api/bookings/b1/accept", "worker", http.StatusOK},
		{"customer cannot accept", http.MethodPost, "/api/bookings/b1/accept", "customer", http.StatusForbidden},
		{"admin passes role guard", http.MethodPost, "/api/bookings/b1/accept", "admin", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/nope", "admin", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
