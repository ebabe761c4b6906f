package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	bookings   *mocks.MockBookingRepo
	workers    *mocks.MockWorkerRepo
	categories *mocks.MockCategoryRepo
	ledger     *mocks.MockEarningLedger
	publisher  *mocks.MockEventPublisher
	limiter    *mocks.MockOTPAttemptLimiter
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookings:   mocks.NewMockBookingRepo(t),
		workers:    mocks.NewMockWorkerRepo(t),
		categories: mocks.NewMockCategoryRepo(t),
		ledger:     mocks.NewMockEarningLedger(t),
		publisher:  mocks.NewMockEventPublisher(t),
		limiter:    mocks.NewMockOTPAttemptLimiter(t),
	}
	svc := NewBookingService(m.bookings, m.workers, m.categories, m.ledger, m.publisher, m.limiter,
		BookingOptions{CommissionRate: decimal.NewFromFloat(0.10), OTPDigits: 4, CandidatePool: 2},
		newTestLogger(t),
	)
	return svc, m
}

func strPtr(s string) *string { return &s }

func testBooking(status domain.BookingStatus, workerID string) *domain.Booking {
	b := &domain.Booking{
		ID:            "b1",
		CustomerID:    "c1",
		CategoryID:    "plumber",
		BasePrice:     decimal.NewFromInt(500),
		WorkerEarning: decimal.NewFromInt(450),
		TotalPrice:    decimal.NewFromInt(500),
		OTPStart:      "4821",
		Status:        status,
	}
	if workerID != "" {
		b.WorkerID = strPtr(workerID)
	}
	return b
}

func withStatus(b *domain.Booking, status domain.BookingStatus, workerID string) *domain.Booking {
	cp := *b
	cp.Status = status
	cp.WorkerID = nil
	if workerID != "" {
		cp.WorkerID = strPtr(workerID)
	}
	return &cp
}

var customer = domain.Actor{ID: "c1", Role: domain.RoleCustomer}

func worker(id string) domain.Actor {
	return domain.Actor{ID: id, Role: domain.RoleWorker}
}

// --- Create ---

func TestBookingService_Create_Success(t *testing.T) {
	svc, m := newBookingService(t)

	m.categories.EXPECT().GetByID(mock.Anything, "plumber").
		Return(&domain.ServiceCategory{ID: "plumber", DefaultPrice: decimal.NewFromInt(300)}, nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.To == domain.BookingStatusPending && e.CustomerID == "c1"
	})).Return(nil)

	b, err := svc.Create(context.Background(), domain.CreateBookingInput{
		CustomerID: "c1",
		CategoryID: "plumber",
		Address:    "12 MG Road",
		BasePrice:  decimal.NewFromInt(500),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, b.Status)
	assert.Nil(t, b.WorkerID)
	assert.True(t, decimal.NewFromInt(450).Equal(b.WorkerEarning))
	assert.True(t, decimal.NewFromInt(500).Equal(b.TotalPrice))
	assert.Len(t, b.OTPStart, 4)
	assert.NotEmpty(t, b.ID)
}

func TestBookingService_Create_UsesCategoryDefaultPrice(t *testing.T) {
	svc, m := newBookingService(t)

	m.categories.EXPECT().GetByID(mock.Anything, "painter").
		Return(&domain.ServiceCategory{ID: "painter", DefaultPrice: decimal.NewFromInt(500)}, nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Create(context.Background(), domain.CreateBookingInput{
		CustomerID: "c1",
		CategoryID: "painter",
		Address:    "Sector 5",
	})

	require.NoError(t, err)
	assert.Equal(t, "500.00", b.BasePrice.StringFixed(2))
	assert.Equal(t, "450.00", b.WorkerEarning.StringFixed(2))
}

func TestBookingService_Create_CategoryNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.categories.EXPECT().GetByID(mock.Anything, "astrologer").Return(nil, domain.ErrCategoryNotFound)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		CustomerID: "c1",
		CategoryID: "astrologer",
		Address:    "Sector 5",
	})

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestBookingService_Create_Validation(t *testing.T) {
	svc, _ := newBookingService(t)

	past := time.Now().Add(-time.Hour)
	cases := []domain.CreateBookingInput{
		{CategoryID: "plumber", Address: "x"},
		{CustomerID: "c1", CategoryID: "plumber"},
		{CustomerID: "c1", CategoryID: "plumber", Address: "x", BasePrice: decimal.NewFromInt(-1)},
		{CustomerID: "c1", CategoryID: "plumber", Address: "x", ScheduledAt: &past},
	}
	for _, in := range cases {
		_, err := svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestBookingService_Create_PublishFailureKeepsBooking(t *testing.T) {
	svc, m := newBookingService(t)

	m.categories.EXPECT().GetByID(mock.Anything, "plumber").
		Return(&domain.ServiceCategory{ID: "plumber", DefaultPrice: decimal.NewFromInt(300)}, nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	b, err := svc.Create(context.Background(), domain.CreateBookingInput{
		CustomerID: "c1", CategoryID: "plumber", Address: "x",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, b.Status)
}

// --- Accept ---

func TestBookingService_Accept_Success(t *testing.T) {
	svc, m := newBookingService(t)
	b := testBooking(domain.BookingStatusPending, "")

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.workers.EXPECT().GetByUserID(mock.Anything, "w1").Return(&domain.WorkerProfile{UserID: "w1"}, nil)
	m.bookings.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool {
		return tr.To == domain.BookingStatusAccepted && tr.RequireUnassigned && tr.AssignWorker == "w1"
	})).Return(withStatus(b, domain.BookingStatusAccepted, "w1"), nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.To == domain.BookingStatusAccepted && e.WorkerID == "w1" && e.OTP == "4821"
	})).Return(nil)

	got, err := svc.Accept(context.Background(), "b1", "w1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAccepted, got.Status)
	assert.True(t, got.AssignedTo("w1"))
}

func TestBookingService_Accept_FromMatched(t *testing.T) {
	svc, m := newBookingService(t)
	b := testBooking(domain.BookingStatusMatched, "")
	b.CandidateIDs = []string{"w1", "w2"}

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.workers.EXPECT().GetByUserID(mock.Anything, "w2").Return(&domain.WorkerProfile{UserID: "w2"}, nil)
	m.bookings.EXPECT().Transition(mock.Anything, mock.Anything).
		Return(withStatus(b, domain.BookingStatusAccepted, "w2"), nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	got, err := svc.Accept(context.Background(), "b1", "w2")

	require.NoError(t, err)
	assert.True(t, got.AssignedTo("w2"))
}

func TestBookingService_Accept_LostRace(t *testing.T) {
	svc, m := newBookingService(t)
	b := testBooking(domain.BookingStatusPending, "")

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil).Once()
	m.workers.EXPECT().GetByUserID(mock.Anything, "w1").Return(&domain.WorkerProfile{UserID: "w1"}, nil)
	m.bookings.EXPECT().Transition(mock.Anything, mock.Anything).Return(nil, domain.ErrTransitionConflict)
	m.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(withStatus(b, domain.BookingStatusAccepted, "w2"), nil).Once()

	_, err := svc.Accept(context.Background(), "b1", "w1")

	assert.ErrorIs(t, err, domain.ErrAlreadyAssigned)
}

func TestBookingService_Accept_ReplayBySameWorker(t *testing.T) {
	svc, m := newBookingService(t)
	b := testBooking(domain.BookingStatusAccepted, "w1")

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	got, err := svc.Accept(context.Background(), "b1", "w1")

	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestBookingService_Accept_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		booking *domain.Booking
		worker  string
		want    error
	}{
		{"taken by another worker", testBooking(domain.BookingStatusAccepted, "w2"), "w1", domain.ErrAlreadyAssigned},
		{"cancelled", testBooking(domain.BookingStatusCancelled, ""), "w1", domain.ErrIllegalTransition},
		{"own booking", testBooking(domain.BookingStatusPending, ""), "c1", domain.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(tt.booking, nil)

			_, err := svc.Accept(context.Background(), "b1", tt.worker)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBookingService_Accept_UnknownWorker(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(domain.BookingStatusPending, ""), nil)
	m.workers.EXPECT().GetByUserID(mock.Anything, "w9").Return(nil, domain.ErrWorkerNotFound)

	_, err := svc.Accept(context.Background(), "b1", "w9")

	assert.ErrorIs(t, err, domain.ErrWorkerNotFound)
}

// --- Start ---

func TestBookingService_Start_Success(t *testing.T) {
	svc, m := newBookingService(t)
	b := testBooking(domain.BookingStatusAccepted, "w1")
	started := withStatus(b, domain.BookingStatusInProgress, "w1")
	started.OTPVerified = true

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.limiter.EXPECT().Allow(mock.Anything, "b1").Return(nil)
	m.bookings.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool {
		return tr.VerifyOTP && tr.RequireWorker == "w1"
	})).Return(started, nil)
	m.limiter.EXPECT().Reset(mock.Anything, "b1").Return(nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	got, err := svc.Start(context.Background(), "b1", worker("w1"), "4821")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusInProgress, got.Status)
	assert.True(t, got.OTPVerified)
}

func TestBookingService_Start_WrongOTP(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(domain.BookingStatusAccepted, "w1"), nil)
	m.limiter.EXPECT().Allow(mock.Anything, "b1").Return(nil)
	m.limiter.EXPECT().Fail(mock.Anything, "b1").Return(nil)

	_, err := svc.Start(context.Background(), "b1", worker("w1"), "0000")

	assert.ErrorIs(t, err, domain.ErrInvalidOTP)
}

func TestBookingService_Start_TooManyAttempts(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(domain.BookingStatusAccepted, "w1"), nil)
	m.limiter.EXPECT().Allow(mock.Anything, "b1").Return(domain.ErrTooManyOTPAttempts)

	_, err := svc.Start(context.Background(), "b1", worker("w1"), "4821")

	assert.ErrorIs(t, err, domain.ErrTooManyOTPAttempts)
}

func TestBookingService_Start_LimiterDownFailsOpen(t *testing.T) {
	svc, m := newBookingService(t)
	b := testBooking(domain.BookingStatusAccepted, "w1")

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.limiter.EXPECT().Allow(mock.Anything, "b1").Return(errors.New("redis: connection refused"))
	m.bookings.EXPECT().Transition(mock.Anything, mock.Anything).
		Return(withStatus(b, domain.BookingStatusInProgress, "w1"), nil)
	m.limiter.EXPECT().Reset(mock.Anything, "b1").Return(errors.New("redis: connection refused"))
	m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Start(context.Background(), "b1", worker("w1"), "4821")

	require.NoError(t, err)
}

func TestBookingService_Start_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		booking *domain.Booking
		actor   domain.Actor
		want    error
	}{
		{"pending skips accept", testBooking(domain.BookingStatusPending, ""), worker("w1"), domain.ErrIllegalTransition},
		{"other worker", testBooking(domain.BookingStatusAccepted, "w2"), worker("w1"), domain.ErrForbidden},
		{"completed", testBooking(domain.BookingStatusCompleted, "w1"), worker("w1"), domain.ErrIllegalTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(tt.booking, nil)

			_, err := svc.Start(context.Background(), "b1", tt.actor, "4821")

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// --- Complete ---

func TestBookingService_Complete_RecordsEarning(t *testing.T) {
	svc, m := newBookingService(t)
	b := testBooking(domain.BookingStatusInProgress, "w1")

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.bookings.EXPECT().Transition(mock.Anything, mock.Anything).
		Return(withStatus(b, domain.BookingStatusCompleted, "w1"), nil)
	m.ledger.EXPECT().RecordEarning(mock.Anything, "w1", "b1", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(450))
	})).Return(&domain.WalletTransaction{ID: "t1"}, true, nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.To == domain.BookingStatusCompleted && e.WorkerID == "w1"
	})).Return(nil)

	got, err := svc.Complete(context.Background(), "b1", worker("w1"))

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, got.Status)
}

func TestBookingService_Complete_ReplayHealsLedger(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(domain.BookingStatusCompleted, "w1"), nil)
	m.ledger.EXPECT().RecordEarning(mock.Anything, "w1", "b1", mock.Anything).
		Return(&domain.WalletTransaction{ID: "t1"}, true, nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.From == domain.BookingStatusInProgress && e.To == domain.BookingStatusCompleted
	})).Return(nil).Once()

	got, err := svc.Complete(context.Background(), "b1", worker("w1"))

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, got.Status)
}

func TestBookingService_Complete_ReplayAlreadyCreditedIsSilent(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(testBooking(domain.BookingStatusCompleted, "w1"), nil)
	m.ledger.EXPECT().RecordEarning(mock.Anything, "w1", "b1", mock.Anything).
		Return(&domain.WalletTransaction{ID: "t1"}, false, nil)

	_, err := svc.Complete(context.Background(), "b1", worker("w1"))

	require.NoError(t, err)
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestBookingService_Complete_LedgerFailure(t *testing.T) {
	svc, m := newBookingService(t)
	b := testBooking(domain.BookingStatusInProgress, "w1")
	ledgerErr := errors.New("db error")

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.bookings.EXPECT().Transition(mock.Anything, mock.Anything).
		Return(withStatus(b, domain.BookingStatusCompleted, "w1"), nil)
	m.ledger.EXPECT().RecordEarning(mock.Anything, "w1", "b1", mock.Anything).Return(nil, false, ledgerErr)

	_, err := svc.Complete(context.Background(), "b1", worker("w1"))

	assert.ErrorIs(t, err, ledgerErr)
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestBookingService_Complete_ByAdmin(t *testing.T) {
	svc, m := newBookingService(t)
	b := testBooking(domain.BookingStatusInProgress, "w1")

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.bookings.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool {
		return tr.RequireWorker == "w1" && tr.ActorID == "admin"
	})).Return(withStatus(b, domain.BookingStatusCompleted, "w1"), nil)
	m.ledger.EXPECT().RecordEarning(mock.Anything, "w1", "b1", mock.Anything).Return(&domain.WalletTransaction{}, true, nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Complete(context.Background(), "b1", domain.Actor{ID: "admin", Role: domain.RoleAdmin})

	require.NoError(t, err)
}

func TestBookingService_Complete_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		booking *domain.Booking
		actor   domain.Actor
		want    error
	}{
		{"accepted skips start", testBooking(domain.BookingStatusAccepted, "w1"), worker("w1"), domain.ErrIllegalTransition},
		{"cancelled", testBooking(domain.BookingStatusCancelled, ""), worker("w1"), domain.ErrIllegalTransition},
		{"other worker", testBooking(domain.BookingStatusInProgress, "w2"), worker("w1"), domain.ErrForbidden},
		{"customer replay", testBooking(domain.BookingStatusCompleted, "w1"), customer, domain.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(tt.booking, nil)

			_, err := svc.Complete(context.Background(), "b1", tt.actor)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// --- Cancel ---

func TestBookingService_Cancel_NotifiesFormerWorker(t *testing.T) {
	svc, m := newBookingService(t)
	b := testBooking(domain.BookingStatusAccepted, "w1")

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.bookings.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool {
		return tr.ClearWorker && tr.ClearOTP && tr.RequireWorker == "w1" &&
			len(tr.From) == 1 && tr.From[0] == domain.BookingStatusAccepted
	})).Return(withStatus(b, domain.BookingStatusCancelled, ""), nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.To == domain.BookingStatusCancelled && e.WorkerID == "w1"
	})).Return(nil)

	got, err := svc.Cancel(context.Background(), "b1", customer)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
	assert.Nil(t, got.WorkerID)
}

func TestBookingService_Cancel_RetriesAfterConcurrentAccept(t *testing.T) {
	svc, m := newBookingService(t)
	pending := testBooking(domain.BookingStatusPending, "")
	accepted := withStatus(pending, domain.BookingStatusAccepted, "w1")

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pending, nil).Once()
	m.bookings.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool {
		return tr.RequireUnassigned
	})).Return(nil, domain.ErrTransitionConflict).Once()
	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(accepted, nil).Once()
	m.bookings.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool {
		return tr.RequireWorker == "w1"
	})).Return(withStatus(pending, domain.BookingStatusCancelled, ""), nil).Once()
	m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.WorkerID == "w1" && e.From == domain.BookingStatusAccepted
	})).Return(nil)

	_, err := svc.Cancel(context.Background(), "b1", customer)

	require.NoError(t, err)
}

func TestBookingService_Cancel_Idempotent(t *testing.T) {
	svc, m := newBookingService(t)
	b := testBooking(domain.BookingStatusCancelled, "")

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	got, err := svc.Cancel(context.Background(), "b1", customer)

	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestBookingService_Cancel_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		booking *domain.Booking
		actor   domain.Actor
		want    error
	}{
		{"completed", testBooking(domain.BookingStatusCompleted, "w1"), customer, domain.ErrIllegalTransition},
		{"stranger", testBooking(domain.BookingStatusPending, ""), worker("w1"), domain.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(tt.booking, nil)

			_, err := svc.Cancel(context.Background(), "b1", tt.actor)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// --- Match ---

func TestBookingService_MatchPending(t *testing.T) {
	svc, m := newBookingService(t)
	b := testBooking(domain.BookingStatusPending, "")

	m.workers.EXPECT().ListOnline(mock.Anything, 0).Return([]*domain.WorkerProfile{
		{UserID: "w1"}, {UserID: "w2"}, {UserID: "c1"}, {UserID: "w3"},
	}, nil)
	m.bookings.EXPECT().CountActiveByWorker(mock.Anything, "w1").Return(1, nil)
	m.bookings.EXPECT().CountActiveByWorker(mock.Anything, "w2").Return(0, nil)
	m.bookings.EXPECT().CountActiveByWorker(mock.Anything, "c1").Return(0, nil)
	m.bookings.EXPECT().CountActiveByWorker(mock.Anything, "w3").Return(0, nil)
	m.bookings.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.BookingFilter) bool {
		return f.Unassigned && len(f.Status) == 1 && f.Status[0] == domain.BookingStatusPending
	})).Return([]*domain.Booking{b}, nil)

	matched := withStatus(b, domain.BookingStatusMatched, "")
	matched.CandidateIDs = []string{"w2", "w3"}
	m.bookings.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool {
		return tr.To == domain.BookingStatusMatched && assert.ObjectsAreEqual([]string{"w2", "w3"}, tr.Candidates)
	})).Return(matched, nil)
	m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return len(e.CandidateIDs) == 2 && e.WorkerID == ""
	})).Return(nil)

	got, err := svc.MatchPending(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].WorkerID)
}

func TestBookingService_MatchPending_NoWorkers(t *testing.T) {
	svc, m := newBookingService(t)

	m.workers.EXPECT().ListOnline(mock.Anything, 0).Return(nil, nil)

	got, err := svc.MatchPending(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBookingService_MatchPending_SkipsConflicts(t *testing.T) {
	svc, m := newBookingService(t)

	m.workers.EXPECT().ListOnline(mock.Anything, 0).Return([]*domain.WorkerProfile{{UserID: "w1"}}, nil)
	m.bookings.EXPECT().CountActiveByWorker(mock.Anything, "w1").Return(0, nil)
	m.bookings.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*domain.Booking{testBooking(domain.BookingStatusPending, "")}, nil)
	m.bookings.EXPECT().Transition(mock.Anything, mock.Anything).Return(nil, domain.ErrTransitionConflict)

	got, err := svc.MatchPending(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

// --- Queries ---

func TestBookingService_List_ClampsLimit(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().List(mock.Anything, domain.BookingFilter{CustomerID: "c1", Limit: maxListLimit}).
		Return([]*domain.Booking{}, nil)

	_, err := svc.List(context.Background(), domain.BookingFilter{CustomerID: "c1", Limit: 10000})

	require.NoError(t, err)
}

func TestBookingService_History_NotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.History(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestGenerateOTP(t *testing.T) {
	for _, digits := range []int{4, 6} {
		otp, err := generateOTP(digits)
		require.NoError(t, err)
		assert.Len(t, otp, digits)
		assert.Regexp(t, `^[0-9]+$`, otp)
	}
}
