package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/rahi/internal/cache"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncPublisher delivers events inline so assertions see notifications immediately.
type syncPublisher struct {
	mu     sync.Mutex
	events []domain.BookingEvent
	notify *NotificationService
}

func (p *syncPublisher) Publish(ctx context.Context, e domain.BookingEvent) error {
	p.mu.Lock()
	p.events = append(p.events, e)
	p.mu.Unlock()
	return p.notify.HandleEvent(ctx, e)
}

func (p *syncPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.RoutingKey())
	}
	return out
}

type world struct {
	store    *memory.Store
	bookings *BookingService
	wallet   *WalletService
	notify   *NotificationService
	events   *syncPublisher
	workers  []string
}

func newWorld(t *testing.T, workers int) *world {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	log := newTestLogger(t)

	require.NoError(t, store.Users().Create(ctx, &domain.User{
		ID: "c1", FullName: "Asha", Phone: "9000000000", Role: domain.RoleCustomer, Language: domain.LanguageEnglish,
	}))

	w := &world{store: store}
	for i := 0; i < workers; i++ {
		id := fmt.Sprintf("w%d", i+1)
		lang := domain.LanguageEnglish
		if i%2 == 1 {
			lang = domain.LanguageHindi
		}
		require.NoError(t, store.Users().Create(ctx, &domain.User{
			ID: id, FullName: "Worker " + id, Phone: "91000000" + fmt.Sprintf("%02d", i), Role: domain.RoleWorker, Language: lang,
		}))
		require.NoError(t, store.Workers().Create(ctx, &domain.WorkerProfile{
			ID: "p-" + id, UserID: id, Status: domain.WorkerStatusOnline, UpdatedAt: time.Now().Add(time.Duration(i) * time.Millisecond),
		}))
		w.workers = append(w.workers, id)
	}

	w.notify = NewNotificationService(store.Notifications(), store.Users(), store.Categories(), store.Bookings(), log)
	w.events = &syncPublisher{notify: w.notify}
	w.wallet = NewWalletService(store.Wallet(), store.Workers(), decimal.NewFromInt(100), time.UTC, log)
	w.bookings = NewBookingService(store.Bookings(), store.Workers(), store.Categories(), w.wallet, w.events,
		cache.NewMemoryOTPLimiter(3, time.Minute),
		BookingOptions{CommissionRate: decimal.NewFromFloat(0.10), OTPDigits: 4, CandidatePool: 3},
		log,
	)
	return w
}

func (w *world) create(t *testing.T) *domain.Booking {
	t.Helper()
	b, err := w.bookings.Create(context.Background(), domain.CreateBookingInput{
		CustomerID: "c1",
		CategoryID: "plumber",
		Address:    "12 MG Road",
		City:       "Indore",
		BasePrice:  decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	return b
}

func findNotification(notes []*domain.Notification, kind domain.NotificationType, text string) *domain.Notification {
	for _, n := range notes {
		if n.Type == kind && strings.Contains(n.Message, text) {
			return n
		}
	}
	return nil
}

func (w *world) otp(t *testing.T, id string) string {
	t.Helper()
	b, err := w.store.Bookings().GetByID(context.Background(), id)
	require.NoError(t, err)
	return b.OTPStart
}

func TestLifecycle_HappyPath(t *testing.T) {
	w := newWorld(t, 3)
	ctx := context.Background()
	customer := domain.Actor{ID: "c1", Role: domain.RoleCustomer}

	b := w.create(t)
	assert.Equal(t, "450", b.WorkerEarning.String())

	matched, err := w.bookings.MatchPending(ctx)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Len(t, matched[0].CandidateIDs, 3)

	_, err = w.bookings.Accept(ctx, b.ID, "w2")
	require.NoError(t, err)

	view, err := NewWorkerService(w.store.Workers(), w.store.Users(), w.store.Bookings(), newTestLogger(t)).GetProfile(ctx, "w2")
	require.NoError(t, err)
	assert.Equal(t, "busy", view.DisplayStatus())

	_, err = w.bookings.Start(ctx, b.ID, worker("w2"), "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidOTP)

	started, err := w.bookings.Start(ctx, b.ID, worker("w2"), w.otp(t, b.ID))
	require.NoError(t, err)
	assert.True(t, started.OTPVerified)
	assert.NotNil(t, started.StartedAt)

	done, err := w.bookings.Complete(ctx, b.ID, worker("w2"))
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, done.Status)

	_, err = w.bookings.Cancel(ctx, b.ID, customer)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	balance, err := w.wallet.Balance(ctx, "w2")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(450)))

	history, err := w.bookings.History(ctx, b.ID)
	require.NoError(t, err)
	var path []domain.BookingStatus
	for _, h := range history {
		path = append(path, h.To)
	}
	assert.Equal(t, []domain.BookingStatus{
		domain.BookingStatusPending,
		domain.BookingStatusMatched,
		domain.BookingStatusAccepted,
		domain.BookingStatusInProgress,
		domain.BookingStatusCompleted,
	}, path)

	assert.Equal(t, []string{
		"booking.pending", "booking.matched", "booking.accepted", "booking.in_progress", "booking.completed",
	}, w.events.keys())

	custNotes, err := w.notify.List(ctx, "c1", 0)
	require.NoError(t, err)
	var sawOTP bool
	for _, n := range custNotes {
		if n.Type == domain.NotificationOTPAlert {
			sawOTP = true
			assert.Contains(t, n.Message, w.otp(t, b.ID))
		}
	}
	assert.True(t, sawOTP)

	workerNotes, err := w.notify.List(ctx, "w2", 0)
	require.NoError(t, err)
	paid := findNotification(workerNotes, domain.NotificationPaymentReceived, "")
	require.NotNil(t, paid)
	assert.Contains(t, paid.Message, "450.00")
}

func TestLifecycle_ConcurrentAcceptExactlyOneWins(t *testing.T) {
	w := newWorld(t, 8)
	ctx := context.Background()
	b := w.create(t)

	var (
		mu      sync.Mutex
		winners []string
		wg      sync.WaitGroup
	)
	for _, id := range w.workers {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := w.bookings.Accept(ctx, b.ID, id)
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrAlreadyAssigned)
				return
			}
			mu.Lock()
			winners = append(winners, id)
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	require.Len(t, winners, 1)
	got, err := w.bookings.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.AssignedTo(winners[0]))
}

func TestLifecycle_RepeatedCompleteCreditsOnce(t *testing.T) {
	w := newWorld(t, 1)
	ctx := context.Background()
	b := w.create(t)

	_, err := w.bookings.Accept(ctx, b.ID, "w1")
	require.NoError(t, err)
	_, err = w.bookings.Start(ctx, b.ID, worker("w1"), w.otp(t, b.ID))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.bookings.Complete(ctx, b.ID, worker("w1"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	txs, err := w.wallet.Transactions(ctx, "w1", 0)
	require.NoError(t, err)
	assert.Len(t, txs, 1)

	rec, err := w.wallet.Reconcile(ctx, "w1")
	require.NoError(t, err)
	assert.True(t, rec.Drift.IsZero())

	completed := 0
	for _, k := range w.events.keys() {
		if k == "booking.completed" {
			completed++
		}
	}
	assert.Equal(t, 1, completed)

	notes, err := w.notify.List(ctx, "w1", 0)
	require.NoError(t, err)
	payments := 0
	for _, n := range notes {
		if n.Type == domain.NotificationPaymentReceived {
			payments++
		}
	}
	assert.Equal(t, 1, payments)
}

func TestLifecycle_OTPLockout(t *testing.T) {
	w := newWorld(t, 1)
	ctx := context.Background()
	b := w.create(t)

	_, err := w.bookings.Accept(ctx, b.ID, "w1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = w.bookings.Start(ctx, b.ID, worker("w1"), "0000x")
		require.ErrorIs(t, err, domain.ErrInvalidOTP)
	}
	_, err = w.bookings.Start(ctx, b.ID, worker("w1"), w.otp(t, b.ID))
	assert.ErrorIs(t, err, domain.ErrTooManyOTPAttempts)

	got, err := w.bookings.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAccepted, got.Status)
}

func TestLifecycle_CancelAfterAcceptTellsWorker(t *testing.T) {
	w := newWorld(t, 1)
	ctx := context.Background()
	b := w.create(t)

	_, err := w.bookings.Accept(ctx, b.ID, "w1")
	require.NoError(t, err)

	cancelled, err := w.bookings.Cancel(ctx, b.ID, domain.Actor{ID: "c1", Role: domain.RoleCustomer})
	require.NoError(t, err)
	assert.Nil(t, cancelled.WorkerID)

	notes, err := w.notify.List(ctx, "w1", 0)
	require.NoError(t, err)
	assert.NotNil(t, findNotification(notes, domain.NotificationBookingUpdate, "cancelled"))

	active, err := w.store.Bookings().CountActiveByWorker(ctx, "w1")
	require.NoError(t, err)
	assert.Zero(t, active)
}

func TestLifecycle_CancelInProgressClearsOTP(t *testing.T) {
	w := newWorld(t, 1)
	ctx := context.Background()
	b := w.create(t)

	_, err := w.bookings.Accept(ctx, b.ID, "w1")
	require.NoError(t, err)
	started, err := w.bookings.Start(ctx, b.ID, worker("w1"), w.otp(t, b.ID))
	require.NoError(t, err)
	require.True(t, started.OTPVerified)

	cancelled, err := w.bookings.Cancel(ctx, b.ID, domain.Actor{ID: "c1", Role: domain.RoleCustomer})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)
	assert.False(t, cancelled.OTPVerified)

	stored, err := w.bookings.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, stored.OTPVerified)

	assertInvariants(t, w, []string{b.ID})
}

// TestLifecycle_RandomOperations drives bookings with random actions and checks
// the invariants that must hold after every step.
func TestLifecycle_RandomOperations(t *testing.T) {
	w := newWorld(t, 4)
	ctx := context.Background()
	rnd := rand.New(rand.NewSource(42))
	customer := domain.Actor{ID: "c1", Role: domain.RoleCustomer}

	var ids []string
	for i := 0; i < 6; i++ {
		ids = append(ids, w.create(t).ID)
	}

	for step := 0; step < 400; step++ {
		id := ids[rnd.Intn(len(ids))]
		who := w.workers[rnd.Intn(len(w.workers))]

		switch rnd.Intn(6) {
		case 0:
			_, _ = w.bookings.MatchPending(ctx)
		case 1:
			_, _ = w.bookings.Accept(ctx, id, who)
		case 2:
			otp := "9999x"
			if rnd.Intn(2) == 0 {
				otp = w.otp(t, id)
			}
			_, _ = w.bookings.Start(ctx, id, worker(who), otp)
		case 3:
			_, _ = w.bookings.Complete(ctx, id, worker(who))
		case 4:
			if rnd.Intn(4) == 0 {
				_, _ = w.bookings.Cancel(ctx, id, customer)
			}
		case 5:
			ids = append(ids, w.create(t).ID)
		}

		assertInvariants(t, w, ids)
	}
}

func assertInvariants(t *testing.T, w *world, ids []string) {
	t.Helper()
	ctx := context.Background()

	earned := make(map[string]decimal.Decimal)
	for _, id := range ids {
		b, err := w.bookings.Get(ctx, id)
		require.NoError(t, err)

		require.Equal(t, b.Status.HasWorker(), b.WorkerID != nil, "booking %s in %s", id, b.Status)
		if b.Status == domain.BookingStatusInProgress || b.Status == domain.BookingStatusCompleted {
			require.True(t, b.OTPVerified, "booking %s past start without otp", id)
		} else {
			require.False(t, b.OTPVerified, "booking %s in %s keeps a verified otp", id, b.Status)
		}
		if b.Status == domain.BookingStatusCompleted {
			sum := earned[b.Worker()]
			earned[b.Worker()] = sum.Add(b.WorkerEarning)
		}

		history, err := w.bookings.History(ctx, id)
		require.NoError(t, err)
		for i := 1; i < len(history); i++ {
			require.True(t, domain.CanTransition(history[i].From, history[i].To),
				"booking %s: %s -> %s", id, history[i].From, history[i].To)
		}
	}

	for _, wid := range w.workers {
		balance, err := w.wallet.Balance(ctx, wid)
		require.NoError(t, err)
		require.True(t, balance.Equal(earned[wid]), "worker %s balance %s, earned %s", wid, balance, earned[wid])

		active, err := w.store.Bookings().CountActiveByWorker(ctx, wid)
		require.NoError(t, err)
		require.LessOrEqual(t, active, len(ids))
	}
}
