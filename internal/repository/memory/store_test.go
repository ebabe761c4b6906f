package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooking(t *testing.T, s *Store, id string) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, s.Bookings().Create(context.Background(), &domain.Booking{
		ID:         id,
		CustomerID: "c1",
		CategoryID: "plumber",
		Status:     domain.BookingStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}))
}

func seedWorker(t *testing.T, s *Store, userID string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.Users().Create(ctx, &domain.User{ID: userID, Phone: "phone-" + userID, Role: domain.RoleWorker}))
	require.NoError(t, s.Workers().Create(ctx, &domain.WorkerProfile{ID: "p-" + userID, UserID: userID, Status: domain.WorkerStatusOffline}))
}

func accept(id, worker string) domain.Transition {
	return domain.Transition{
		BookingID:         id,
		From:              []domain.BookingStatus{domain.BookingStatusPending, domain.BookingStatusMatched},
		To:                domain.BookingStatusAccepted,
		ActorID:           worker,
		At:                time.Now().UTC(),
		RequireUnassigned: true,
		AssignWorker:      worker,
	}
}

func TestBookingRepo_Transition_ConcurrentAcceptsOneWins(t *testing.T) {
	s := New()
	seedBooking(t, s, "b1")
	repo := s.Bookings()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Transition(context.Background(), accept("b1", "w"+string(rune('a'+i))))
			if err == nil {
				wins.Add(1)
				return
			}
			assert.ErrorIs(t, err, domain.ErrTransitionConflict)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	b, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAccepted, b.Status)
	assert.NotNil(t, b.WorkerID)
}

func TestBookingRepo_Transition_RecordsHistory(t *testing.T) {
	s := New()
	seedBooking(t, s, "b1")
	repo := s.Bookings()
	ctx := context.Background()

	_, err := repo.Transition(ctx, accept("b1", "w1"))
	require.NoError(t, err)
	_, err = repo.Transition(ctx, domain.Transition{
		BookingID:     "b1",
		From:          []domain.BookingStatus{domain.BookingStatusAccepted},
		To:            domain.BookingStatusCancelled,
		ActorID:       "c1",
		At:            time.Now().UTC(),
		RequireWorker: "w1",
		ClearWorker:   true,
	})
	require.NoError(t, err)

	history, err := repo.History(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, domain.BookingStatusPending, history[0].To)
	assert.Equal(t, "w1", history[1].WorkerID)
	assert.Equal(t, domain.BookingStatusCancelled, history[2].To)
	assert.Equal(t, "w1", history[2].WorkerID)

	b, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Nil(t, b.WorkerID)
}

func TestBookingRepo_Transition_ClearOTP(t *testing.T) {
	s := New()
	seedBooking(t, s, "b1")
	repo := s.Bookings()
	ctx := context.Background()

	_, err := repo.Transition(ctx, accept("b1", "w1"))
	require.NoError(t, err)
	started, err := repo.Transition(ctx, domain.Transition{
		BookingID:     "b1",
		From:          []domain.BookingStatus{domain.BookingStatusAccepted},
		To:            domain.BookingStatusInProgress,
		ActorID:       "w1",
		At:            time.Now().UTC(),
		RequireWorker: "w1",
		VerifyOTP:     true,
	})
	require.NoError(t, err)
	require.True(t, started.OTPVerified)

	cancelled, err := repo.Transition(ctx, domain.Transition{
		BookingID:     "b1",
		From:          []domain.BookingStatus{domain.BookingStatusInProgress},
		To:            domain.BookingStatusCancelled,
		ActorID:       "c1",
		At:            time.Now().UTC(),
		RequireWorker: "w1",
		ClearWorker:   true,
		ClearOTP:      true,
	})
	require.NoError(t, err)
	assert.False(t, cancelled.OTPVerified)
	assert.Nil(t, cancelled.WorkerID)
}

func TestBookingRepo_Transition_WrongWorkerConflicts(t *testing.T) {
	s := New()
	seedBooking(t, s, "b1")
	ctx := context.Background()

	_, err := s.Bookings().Transition(ctx, accept("b1", "w1"))
	require.NoError(t, err)

	_, err = s.Bookings().Transition(ctx, domain.Transition{
		BookingID:     "b1",
		From:          []domain.BookingStatus{domain.BookingStatusAccepted},
		To:            domain.BookingStatusInProgress,
		RequireWorker: "w2",
	})
	assert.ErrorIs(t, err, domain.ErrTransitionConflict)
}

func TestBookingRepo_ReturnsCopies(t *testing.T) {
	s := New()
	seedBooking(t, s, "b1")

	b, err := s.Bookings().GetByID(context.Background(), "b1")
	require.NoError(t, err)
	b.Status = domain.BookingStatusCompleted

	again, err := s.Bookings().GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, again.Status)
}

func TestBookingRepo_List_Filters(t *testing.T) {
	s := New()
	seedBooking(t, s, "b1")
	seedBooking(t, s, "b2")
	ctx := context.Background()
	_, err := s.Bookings().Transition(ctx, accept("b2", "w1"))
	require.NoError(t, err)

	unassigned, err := s.Bookings().List(ctx, domain.BookingFilter{Unassigned: true})
	require.NoError(t, err)
	require.Len(t, unassigned, 1)
	assert.Equal(t, "b1", unassigned[0].ID)

	mine, err := s.Bookings().List(ctx, domain.BookingFilter{Participant: "w1"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "b2", mine[0].ID)

	active, err := s.Bookings().CountActiveByWorker(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, 1, active)
}

func TestWalletRepo_EarningIsIdempotentPerBooking(t *testing.T) {
	s := New()
	seedWorker(t, s, "w1")
	ctx := context.Background()
	bookingID := "b1"

	earning := func(id string) *domain.WalletTransaction {
		return &domain.WalletTransaction{
			ID:        id,
			WorkerID:  "w1",
			BookingID: &bookingID,
			Amount:    decimal.NewFromInt(450),
			Type:      domain.TransactionEarning,
			Status:    domain.TransactionCompleted,
			CreatedAt: time.Now().UTC(),
		}
	}

	first, created, err := s.Wallet().Append(ctx, earning("t1"))
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := s.Wallet().Append(ctx, earning("t2"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	balance, err := s.Wallet().Balance(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "450.00", balance.StringFixed(2))

	p, err := s.Workers().GetByUserID(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.TotalJobs)
	assert.Equal(t, "450.00", p.WalletBalance.StringFixed(2))
}

func TestWalletRepo_WithdrawChecksLedger(t *testing.T) {
	s := New()
	seedWorker(t, s, "w1")
	ctx := context.Background()

	_, _, err := s.Wallet().Append(ctx, &domain.WalletTransaction{
		ID: "t1", WorkerID: "w1", Amount: decimal.NewFromInt(300),
		Type: domain.TransactionBonus, Status: domain.TransactionCompleted,
	})
	require.NoError(t, err)

	err = s.Wallet().Withdraw(ctx, &domain.WalletTransaction{
		ID: "t2", WorkerID: "w1", Amount: decimal.NewFromInt(-500),
		Type: domain.TransactionWithdrawal, Status: domain.TransactionCompleted,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	err = s.Wallet().Withdraw(ctx, &domain.WalletTransaction{
		ID: "t3", WorkerID: "w1", Amount: decimal.NewFromInt(-300),
		Type: domain.TransactionWithdrawal, Status: domain.TransactionCompleted,
	})
	require.NoError(t, err)

	txs, err := s.Wallet().ListByWorker(ctx, "w1", 10)
	require.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.True(t, domain.SumCompleted(txs).IsZero())
}

func TestNotificationRepo_MarkRead(t *testing.T) {
	s := New()
	repo := s.Notifications()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Notification{ID: "01A", UserID: "u1"}))
	require.NoError(t, repo.Create(ctx, &domain.Notification{ID: "01B", UserID: "u1"}))

	require.NoError(t, repo.MarkRead(ctx, "u1", "01A"))
	assert.ErrorIs(t, repo.MarkRead(ctx, "u2", "01A"), domain.ErrNotificationNotFound)

	unread, err := repo.CountUnread(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	list, err := repo.ListByUser(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, "01B", list[0].ID)

	changed, err := repo.MarkAllRead(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
}

func TestCategoryRepo_Seeded(t *testing.T) {
	s := New()

	list, err := s.Categories().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 10)

	_, err = s.Categories().GetByID(context.Background(), "unknown")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
