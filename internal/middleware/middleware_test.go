package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/rahi/internal/cache"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/handler/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

type staticParser map[string]domain.Actor

func (p staticParser) Parse(token string) (domain.Actor, error) {
	a, ok := p[token]
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	return a, nil
}

func serve(r http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	parser := staticParser{
		"cust":  {ID: "c1", Role: domain.RoleCustomer},
		"admin": {ID: "a1", Role: domain.RoleAdmin},
	}

	r := ginext.New("test")
	r.GET("/me", Auth(parser), func(c *ginext.Context) {
		a, _ := ActorFrom(c)
		c.String(http.StatusOK, a.ID)
	})
	r.GET("/workers-only", Auth(parser), RequireRole(domain.RoleWorker), func(c *ginext.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name    string
		target  string
		headers map[string]string
		code    int
		body    string
	}{
		{"bearer", "/me", map[string]string{"Authorization": "Bearer cust"}, http.StatusOK, "c1"},
		{"lowercase scheme", "/me", map[string]string{"Authorization": "bearer cust"}, http.StatusOK, "c1"},
		{"query token", "/me?token=cust", nil, http.StatusOK, "c1"},
		{"missing", "/me", nil, http.StatusUnauthorized, ""},
		{"basic scheme", "/me", map[string]string{"Authorization": "Basic cust"}, http.StatusUnauthorized, ""},
		{"unknown token", "/me", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized, ""},
		{"wrong role", "/workers-only", map[string]string{"Authorization": "Bearer cust"}, http.StatusForbidden, ""},
		{"admin passes role check", "/workers-only", map[string]string{"Authorization": "Bearer admin"}, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, http.MethodGet, tt.target, tt.headers)
			assert.Equal(t, tt.code, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", func(c *ginext.Context) {
		c.String(http.StatusOK, RequestIDFrom(c))
	})

	w := serve(r, http.MethodGet, "/", map[string]string{HeaderRequestID: "abc"})
	assert.Equal(t, "abc", w.Body.String())
	assert.Equal(t, "abc", w.Header().Get(HeaderRequestID))

	w = serve(r, http.MethodGet, "/", nil)
	assert.Len(t, w.Body.String(), 36)
}

func TestTimeout(t *testing.T) {
	r := ginext.New("test")
	r.GET("/", Timeout(20*time.Millisecond), func(c *ginext.Context) {
		select {
		case <-c.Request.Context().Done():
			c.String(http.StatusServiceUnavailable, c.Request.Context().Err().Error())
		case <-time.After(time.Second):
			c.Status(http.StatusOK)
		}
	})

	w := serve(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, context.DeadlineExceeded.Error(), w.Body.String())
}

func idempotentRouter(t *testing.T, store IdempotencyStore, status *int, calls *atomic.Int32) http.Handler {
	t.Helper()
	parser := staticParser{"w1": {ID: "w1", Role: domain.RoleWorker}, "w2": {ID: "w2", Role: domain.RoleWorker}}

	r := ginext.New("test")
	r.POST("/jobs/:id/complete", Auth(parser), Idempotency(store, newTestLogger(t)), func(c *ginext.Context) {
		n := calls.Add(1)
		c.JSON(*status, ginext.H{"call": n})
	})
	return r
}

func TestIdempotency_ReplaysPerCaller(t *testing.T) {
	var calls atomic.Int32
	status := http.StatusOK
	r := idempotentRouter(t, cache.NewMemoryIdempotencyStore(time.Hour), &status, &calls)

	h := map[string]string{"Authorization": "Bearer w1", HeaderIdempotencyKey: "k1"}
	first := serve(r, http.MethodPost, "/jobs/b1/complete", h)
	second := serve(r, http.MethodPost, "/jobs/b1/complete", h)

	assert.Equal(t, int32(1), calls.Load())
	assert.JSONEq(t, `{"call":1}`, second.Body.String())
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))

	// другой пользователь с тем же ключом
	other := serve(r, http.MethodPost, "/jobs/b1/complete", map[string]string{"Authorization": "Bearer w2", HeaderIdempotencyKey: "k1"})
	assert.JSONEq(t, `{"call":2}`, other.Body.String())

	// без ключа никакой защиты
	serve(r, http.MethodPost, "/jobs/b1/complete", map[string]string{"Authorization": "Bearer w1"})
	assert.Equal(t, int32(3), calls.Load())
}

func TestIdempotency_ServerErrorsAreRetryable(t *testing.T) {
	var calls atomic.Int32
	status := http.StatusInternalServerError
	r := idempotentRouter(t, cache.NewMemoryIdempotencyStore(time.Hour), &status, &calls)

	h := map[string]string{"Authorization": "Bearer w1", HeaderIdempotencyKey: "k2"}
	w := serve(r, http.MethodPost, "/jobs/b1/complete", h)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	status = http.StatusOK
	w = serve(r, http.MethodPost, "/jobs/b1/complete", h)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(2), calls.Load())
}

func TestIdempotency_InFlight(t *testing.T) {
	var calls atomic.Int32
	status := http.StatusOK
	store := cache.NewMemoryIdempotencyStore(time.Hour)
	r := idempotentRouter(t, store, &status, &calls)

	owned, err := store.Reserve(context.Background(), "w1:POST:/jobs/b1/complete:k3")
	require.NoError(t, err)
	require.True(t, owned)

	w := serve(r, http.MethodPost, "/jobs/b1/complete", map[string]string{"Authorization": "Bearer w1", HeaderIdempotencyKey: "k3"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Zero(t, calls.Load())
}

type brokenStore struct{}

func (brokenStore) Reserve(context.Context, string) (bool, error) {
	return false, errors.New("redis: connection refused")
}
func (brokenStore) Get(context.Context, string) (*cache.StoredResponse, error) {
	return nil, errors.New("redis: connection refused")
}
func (brokenStore) Save(context.Context, string, *cache.StoredResponse) error { return nil }
func (brokenStore) Release(context.Context, string) error                     { return nil }

func TestIdempotency_StoreDownLetsRequestThrough(t *testing.T) {
	var calls atomic.Int32
	status := http.StatusOK
	r := idempotentRouter(t, brokenStore{}, &status, &calls)

	w := serve(r, http.MethodPost, "/jobs/b1/complete", map[string]string{"Authorization": "Bearer w1", HeaderIdempotencyKey: "k4"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(Recovery(newTestLogger(t)))
	r.GET("/", func(*ginext.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), dto.CodeInternal)
}

func TestMetrics_DoesNotBreakChain(t *testing.T) {
	r := ginext.New("test")
	r.Use(Metrics(), RequestLogger(newTestLogger(t)))
	r.GET("/ok", func(c *ginext.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/ok", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/missing", nil).Code)
}
