package rahiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendsTokenAndIdempotencyKey(t *testing.T) {
	var seen *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"b1","status":"accepted","worker_id":"w1"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", WithToken("tok"))
	b, err := c.Accept(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, "accepted", b.Status)
	assert.Equal(t, "/api/bookings/b1/accept", seen.URL.Path)
	assert.Equal(t, "Bearer tok", seen.Header.Get("Authorization"))
	assert.NotEmpty(t, seen.Header.Get("Idempotency-Key"))
}

func TestClient_GetHasNoIdempotencyKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Idempotency-Key"))
		assert.Equal(t, "matched", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	list, err := New(srv.URL).ListBookings(context.Background(), map[string]string{"status": "matched", "limit": ""})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "job has already been taken by another worker",
			"code":  "already_assigned",
		})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Accept(context.Background(), "b1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "already_assigned", apiErr.Code)
	assert.False(t, errors.Is(err, ErrNetworkFailure))
}

func TestClient_NetworkFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	c := New("http://"+addr, WithRetries(1, time.Millisecond))
	_, err = c.Balance(context.Background())

	assert.ErrorIs(t, err, ErrNetworkFailure)
}

func TestClient_RetriesKeepIdempotencyKey(t *testing.T) {
	var calls atomic.Int32
	keys := make(chan string, 3)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys <- r.Header.Get("Idempotency-Key")
		if calls.Add(1) == 1 {
			// рвём соединение без ответа
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		_, _ = w.Write([]byte(`{"id":"t1","amount":"-200","transaction_type":"withdrawal","status":"completed"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithRetries(2, time.Millisecond))
	tx, err := c.Withdraw(context.Background(), decimal.NewFromInt(200), "ravi@upi")
	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(-200)))

	require.Equal(t, int32(2), calls.Load())
	first, second := <-keys, <-keys
	assert.Equal(t, first, second)
}
