package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationMocks struct {
	repo       *mocks.MockNotificationRepo
	users      *mocks.MockUserRepo
	categories *mocks.MockCategoryRepo
	bookings   *mocks.MockBookingRepo
	pusher     *mocks.MockNotificationPusher
}

func newNotificationService(t *testing.T) (*NotificationService, notificationMocks) {
	t.Helper()
	m := notificationMocks{
		repo:       mocks.NewMockNotificationRepo(t),
		users:      mocks.NewMockUserRepo(t),
		categories: mocks.NewMockCategoryRepo(t),
		bookings:   mocks.NewMockBookingRepo(t),
		pusher:     mocks.NewMockNotificationPusher(t),
	}
	svc := NewNotificationService(m.repo, m.users, m.categories, m.bookings, newTestLogger(t), m.pusher)
	return svc, m
}

var plumber = &domain.ServiceCategory{ID: "plumber", NameEn: "Plumber", NameHi: "प्लंबर"}

// captured collects stored notifications.
type captured struct {
	mu    sync.Mutex
	items []*domain.Notification
}

func (c *captured) add(_ context.Context, n *domain.Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, n)
	return nil
}

func (c *captured) byUser(userID string) []*domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*domain.Notification
	for _, n := range c.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func TestNotificationService_HandleEvent_Accepted(t *testing.T) {
	svc, m := newNotificationService(t)
	store := &captured{}

	m.categories.EXPECT().GetByID(mock.Anything, "plumber").Return(plumber, nil)
	m.users.EXPECT().GetByID(mock.Anything, "c1").
		Return(&domain.User{ID: "c1", Language: domain.LanguageEnglish}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "w1").
		Return(&domain.User{ID: "w1", Language: domain.LanguageHindi}, nil)
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(store.add)
	m.pusher.EXPECT().Push(mock.Anything, mock.Anything, mock.Anything).Return()

	err := svc.HandleEvent(context.Background(), domain.BookingEvent{
		BookingID:  "b1",
		CustomerID: "c1",
		WorkerID:   "w1",
		CategoryID: "plumber",
		From:       domain.BookingStatusPending,
		To:         domain.BookingStatusAccepted,
		OTP:        "4821",
		At:         time.Now(),
	})

	require.NoError(t, err)

	forCustomer := store.byUser("c1")
	require.Len(t, forCustomer, 2)
	assert.Equal(t, domain.NotificationBookingUpdate, forCustomer[0].Type)
	assert.Contains(t, forCustomer[0].Message, "Plumber")
	assert.Equal(t, domain.NotificationOTPAlert, forCustomer[1].Type)
	assert.Contains(t, forCustomer[1].Message, "4821")

	forWorker := store.byUser("w1")
	require.Len(t, forWorker, 1)
	assert.Contains(t, forWorker[0].Message, "प्लंबर")
	assert.NotContains(t, forWorker[0].Message, "4821")

	m.pusher.AssertNumberOfCalls(t, "Push", 3)
}

func TestNotificationService_HandleEvent_MatchedReachesCandidates(t *testing.T) {
	svc, m := newNotificationService(t)
	store := &captured{}

	m.categories.EXPECT().GetByID(mock.Anything, "plumber").Return(plumber, nil)
	m.users.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		})
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(store.add)
	m.pusher.EXPECT().Push(mock.Anything, mock.Anything, mock.Anything).Return()

	err := svc.HandleEvent(context.Background(), domain.BookingEvent{
		BookingID:    "b1",
		CustomerID:   "c1",
		CandidateIDs: []string{"w1", "w2"},
		CategoryID:   "plumber",
		To:           domain.BookingStatusMatched,
	})

	require.NoError(t, err)
	assert.Len(t, store.byUser("c1"), 1)
	assert.Len(t, store.byUser("w1"), 1)
	assert.Len(t, store.byUser("w2"), 1)
}

func TestNotificationService_HandleEvent_CompletedPaysWorker(t *testing.T) {
	svc, m := newNotificationService(t)
	store := &captured{}

	m.categories.EXPECT().GetByID(mock.Anything, "plumber").Return(plumber, nil)
	m.users.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		})
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(store.add)
	m.pusher.EXPECT().Push(mock.Anything, mock.Anything, mock.Anything).Return()

	err := svc.HandleEvent(context.Background(), domain.BookingEvent{
		BookingID:  "b1",
		CustomerID: "c1",
		WorkerID:   "w1",
		CategoryID: "plumber",
		To:         domain.BookingStatusCompleted,
		Amount:     decimal.NewFromInt(450),
	})

	require.NoError(t, err)
	paid := store.byUser("w1")
	require.Len(t, paid, 1)
	assert.Equal(t, domain.NotificationPaymentReceived, paid[0].Type)
	assert.Contains(t, paid[0].Message, "450.00")
	assert.Equal(t, domain.NotificationJobCompletion, store.byUser("c1")[0].Type)
}

func TestNotificationService_HandleEvent_StoreFailureIsSwallowed(t *testing.T) {
	svc, m := newNotificationService(t)

	m.categories.EXPECT().GetByID(mock.Anything, "plumber").Return(nil, domain.ErrCategoryNotFound)
	m.users.EXPECT().GetByID(mock.Anything, "c1").Return(nil, domain.ErrUserNotFound)
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))
	m.pusher.EXPECT().Push(mock.Anything, mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return strings.Contains(n.Message, "plumber")
	})).Return()

	err := svc.HandleEvent(context.Background(), domain.BookingEvent{
		BookingID:  "b1",
		CustomerID: "c1",
		CategoryID: "plumber",
		To:         domain.BookingStatusCancelled,
	})

	require.NoError(t, err)
}

func TestNotificationService_HandleEvent_InvalidEvent(t *testing.T) {
	svc, _ := newNotificationService(t)

	err := svc.HandleEvent(context.Background(), domain.BookingEvent{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNotificationService_Emit(t *testing.T) {
	svc, m := newNotificationService(t)
	user := &domain.User{ID: "u1"}

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.pusher.EXPECT().Push(mock.Anything, user, mock.Anything).Return()

	n, err := svc.Emit(context.Background(), "u1", &domain.Notification{Title: "Hi", Message: "Welcome"})

	require.NoError(t, err)
	assert.Len(t, n.ID, 26)
	assert.Equal(t, "u1", n.UserID)
	assert.False(t, n.Read)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	svc, m := newNotificationService(t)

	m.repo.EXPECT().MarkRead(mock.Anything, "u1", "n1").Return(domain.ErrNotificationNotFound)

	err := svc.MarkRead(context.Background(), "u1", "n1")

	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}

func TestNotificationService_Rebuild(t *testing.T) {
	svc, m := newNotificationService(t)
	store := &captured{}
	b := testBooking(domain.BookingStatusAccepted, "w1")
	t0 := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	m.users.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.User{ID: "c1"}, nil)
	m.bookings.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.BookingFilter) bool {
		return f.Participant == "c1"
	})).Return([]*domain.Booking{b}, nil)
	m.repo.EXPECT().Clear(mock.Anything, "c1").Return(nil)
	m.bookings.EXPECT().History(mock.Anything, "b1").Return([]*domain.HistoryEntry{
		{BookingID: "b1", To: domain.BookingStatusPending, ActorID: "c1", CreatedAt: t0},
		{BookingID: "b1", From: domain.BookingStatusPending, To: domain.BookingStatusAccepted, WorkerID: "w1", ActorID: "w1", CreatedAt: t0.Add(time.Minute)},
	}, nil)
	m.categories.EXPECT().GetByID(mock.Anything, "plumber").Return(plumber, nil)
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(store.add)

	count, err := svc.Rebuild(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	got := store.byUser("c1")
	require.Len(t, got, 3)
	assert.Equal(t, t0, got[0].CreatedAt)
	assert.Contains(t, got[2].Message, "4821")
	assert.Empty(t, store.byUser("w1"))
}
