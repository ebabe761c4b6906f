package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/metrics"
	"github.com/stpnv0/rahi/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
	cancelAttempts   = 3
)

var tracer = otel.Tracer("github.com/stpnv0/rahi/internal/service")

type BookingOptions struct {
	CommissionRate decimal.Decimal
	OTPDigits      int
	CandidatePool  int
	MatchBatch     int
}

func (o BookingOptions) withDefaults() BookingOptions {
	if o.OTPDigits < 4 || o.OTPDigits > 6 {
		o.OTPDigits = 4
	}
	if o.CandidatePool <= 0 {
		o.CandidatePool = 5
	}
	if o.MatchBatch <= 0 {
		o.MatchBatch = 100
	}
	if o.CommissionRate.IsNegative() || o.CommissionRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		o.CommissionRate = decimal.NewFromFloat(0.10)
	}
	return o
}

type BookingService struct {
	bookingRepo  ports.BookingRepo
	workerRepo   ports.WorkerRepo
	categoryRepo ports.CategoryRepo
	ledger       ports.EarningLedger
	publisher    ports.EventPublisher
	limiter      ports.OTPAttemptLimiter
	opts         BookingOptions
	logger       logger.Logger
	now          func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	workerRepo ports.WorkerRepo,
	categoryRepo ports.CategoryRepo,
	ledger ports.EarningLedger,
	publisher ports.EventPublisher,
	limiter ports.OTPAttemptLimiter,
	opts BookingOptions,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		workerRepo:   workerRepo,
		categoryRepo: categoryRepo,
		ledger:       ledger,
		publisher:    publisher,
		limiter:      limiter,
		opts:         opts.withDefaults(),
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingService.Create")
	defer span.End()
	defer observe("create", time.Now())

	if input.CustomerID == "" {
		return nil, s.fail(span, "create", fmt.Errorf("%w: customer_id is required", domain.ErrValidation))
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, s.fail(span, "create", fmt.Errorf("%w: address is required", domain.ErrValidation))
	}
	if input.BasePrice.IsNegative() {
		return nil, s.fail(span, "create", fmt.Errorf("%w: base_price must not be negative", domain.ErrValidation))
	}

	now := s.now()
	if input.ScheduledAt != nil && input.ScheduledAt.Before(now.Add(-time.Minute)) {
		return nil, s.fail(span, "create", fmt.Errorf("%w: scheduled_at is in the past", domain.ErrValidation))
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, s.fail(span, "create", fmt.Errorf("check category: %w", err))
	}

	price := input.BasePrice
	if price.IsZero() {
		price = category.DefaultPrice
	}
	if !price.IsPositive() {
		return nil, s.fail(span, "create", fmt.Errorf("%w: base_price must be positive", domain.ErrValidation))
	}
	price = price.Round(2)

	otp, err := generateOTP(s.opts.OTPDigits)
	if err != nil {
		return nil, s.fail(span, "create", fmt.Errorf("generate otp: %w", err))
	}

	b := &domain.Booking{
		ID:            uuid.New().String(),
		CustomerID:    input.CustomerID,
		CategoryID:    category.ID,
		Description:   input.Description,
		Address:       input.Address,
		City:          input.City,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		BasePrice:     price,
		WorkerEarning: s.workerEarning(price),
		TotalPrice:    price,
		IsEmergency:   input.IsEmergency,
		IsInstant:     input.IsInstant,
		ScheduledAt:   input.ScheduledAt,
		OTPStart:      otp,
		Status:        domain.BookingStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = s.bookingRepo.Create(ctx, b); err != nil {
		return nil, s.fail(span, "create", fmt.Errorf("create booking: %w", err))
	}

	span.SetAttributes(attribute.String("booking.id", b.ID))
	s.applied(ctx, s.event(b, "", b.CustomerID))

	return b, nil
}

// MatchPending attaches a pool of free online workers to every pending unassigned booking.
func (s *BookingService) MatchPending(ctx context.Context) ([]*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingService.MatchPending")
	defer span.End()
	defer observe("match", time.Now())

	workers, err := s.workerRepo.ListOnline(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list online workers: %w", err)
	}

	free := make([]string, 0, len(workers))
	for _, w := range workers {
		active, err := s.bookingRepo.CountActiveByWorker(ctx, w.UserID)
		if err != nil {
			return nil, fmt.Errorf("count active jobs: %w", err)
		}
		if active == 0 {
			free = append(free, w.UserID)
		}
	}
	if len(free) == 0 {
		return nil, nil
	}

	pending, err := s.bookingRepo.List(ctx, domain.BookingFilter{
		Status:     []domain.BookingStatus{domain.BookingStatusPending},
		Unassigned: true,
		Limit:      s.opts.MatchBatch,
	})
	if err != nil {
		return nil, fmt.Errorf("list pending bookings: %w", err)
	}

	var matched []*domain.Booking
	for i, b := range pending {
		candidates := pickCandidates(free, b.CustomerID, i, s.opts.CandidatePool)
		if len(candidates) == 0 {
			continue
		}

		updated, err := s.bookingRepo.Transition(ctx, domain.Transition{
			BookingID:         b.ID,
			From:              []domain.BookingStatus{domain.BookingStatusPending},
			To:                domain.BookingStatusMatched,
			ActorID:           domain.SystemActor.ID,
			At:                s.now(),
			RequireUnassigned: true,
			Candidates:        candidates,
		})
		if errors.Is(err, domain.ErrTransitionConflict) {
			s.logger.Debug("booking left pending before match",
				logger.String("booking_id", b.ID),
			)
			continue
		}
		if err != nil {
			return matched, fmt.Errorf("match booking %s: %w", b.ID, err)
		}

		s.applied(ctx, s.event(updated, domain.BookingStatusPending, domain.SystemActor.ID))
		matched = append(matched, updated)
	}

	span.SetAttributes(attribute.Int("bookings.matched", len(matched)))
	return matched, nil
}

func (s *BookingService) Accept(ctx context.Context, bookingID, workerID string) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingService.Accept",
		trace.WithAttributes(attribute.String("booking.id", bookingID)))
	defer span.End()
	defer observe("accept", time.Now())

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, s.fail(span, "accept", fmt.Errorf("get booking: %w", err))
	}

	if b.Status == domain.BookingStatusAccepted && b.AssignedTo(workerID) {
		return b, nil
	}
	if err = checkAccept(b, workerID); err != nil {
		return nil, s.fail(span, "accept", err)
	}

	if _, err = s.workerRepo.GetByUserID(ctx, workerID); err != nil {
		return nil, s.fail(span, "accept", fmt.Errorf("check worker: %w", err))
	}

	updated, err := s.bookingRepo.Transition(ctx, domain.Transition{
		BookingID:         b.ID,
		From:              []domain.BookingStatus{domain.BookingStatusPending, domain.BookingStatusMatched},
		To:                domain.BookingStatusAccepted,
		ActorID:           workerID,
		At:                s.now(),
		RequireUnassigned: true,
		AssignWorker:      workerID,
	})
	if errors.Is(err, domain.ErrTransitionConflict) {
		cur, rerr := s.bookingRepo.GetByID(ctx, bookingID)
		if rerr != nil {
			return nil, s.fail(span, "accept", fmt.Errorf("reload booking: %w", rerr))
		}
		if cur.Status == domain.BookingStatusAccepted && cur.AssignedTo(workerID) {
			return cur, nil
		}
		if err = checkAccept(cur, workerID); err == nil {
			err = domain.ErrAlreadyAssigned
		}
		return nil, s.fail(span, "accept", err)
	}
	if err != nil {
		return nil, s.fail(span, "accept", fmt.Errorf("accept booking: %w", err))
	}

	e := s.event(updated, b.Status, workerID)
	e.OTP = updated.OTPStart
	s.applied(ctx, e)

	return updated, nil
}

func checkAccept(b *domain.Booking, workerID string) error {
	if b.CustomerID == workerID {
		return fmt.Errorf("%w: customers cannot accept their own booking", domain.ErrForbidden)
	}
	if b.WorkerID != nil && !b.AssignedTo(workerID) {
		return domain.ErrAlreadyAssigned
	}
	if !domain.CanTransition(b.Status, domain.BookingStatusAccepted) {
		return domain.ErrIllegalTransition
	}
	return nil
}

// Reject records that a worker passed on a job. It changes nothing.
func (s *BookingService) Reject(ctx context.Context, bookingID, workerID string) error {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	s.logger.Info("booking rejected by worker",
		logger.String("booking_id", b.ID),
		logger.String("worker_id", workerID),
		logger.String("status", string(b.Status)),
	)
	return nil
}

func (s *BookingService) Start(ctx context.Context, bookingID string, actor domain.Actor, otp string) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingService.Start",
		trace.WithAttributes(attribute.String("booking.id", bookingID)))
	defer span.End()
	defer observe("start", time.Now())

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, s.fail(span, "start", fmt.Errorf("get booking: %w", err))
	}

	if b.Status == domain.BookingStatusInProgress && b.AssignedTo(actor.ID) {
		return b, nil
	}
	if err = checkStart(b, actor); err != nil {
		return nil, s.fail(span, "start", err)
	}

	if err = s.limiter.Allow(ctx, b.ID); err != nil {
		if errors.Is(err, domain.ErrTooManyOTPAttempts) {
			return nil, s.fail(span, "start", err)
		}
		s.logger.Warn("otp attempt limiter unavailable",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}

	if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(otp)), []byte(b.OTPStart)) != 1 {
		if ferr := s.limiter.Fail(ctx, b.ID); ferr != nil {
			s.logger.Warn("failed to count otp attempt",
				logger.String("booking_id", b.ID),
				logger.String("error", ferr.Error()),
			)
		}
		return nil, s.fail(span, "start", domain.ErrInvalidOTP)
	}

	updated, err := s.bookingRepo.Transition(ctx, domain.Transition{
		BookingID:     b.ID,
		From:          []domain.BookingStatus{domain.BookingStatusAccepted},
		To:            domain.BookingStatusInProgress,
		ActorID:       actor.ID,
		At:            s.now(),
		RequireWorker: actor.ID,
		VerifyOTP:     true,
	})
	if errors.Is(err, domain.ErrTransitionConflict) {
		cur, rerr := s.bookingRepo.GetByID(ctx, bookingID)
		if rerr != nil {
			return nil, s.fail(span, "start", fmt.Errorf("reload booking: %w", rerr))
		}
		if cur.Status == domain.BookingStatusInProgress && cur.AssignedTo(actor.ID) {
			return cur, nil
		}
		if err = checkStart(cur, actor); err == nil {
			err = domain.ErrIllegalTransition
		}
		return nil, s.fail(span, "start", err)
	}
	if err != nil {
		return nil, s.fail(span, "start", fmt.Errorf("start booking: %w", err))
	}

	if rerr := s.limiter.Reset(ctx, b.ID); rerr != nil {
		s.logger.Warn("failed to reset otp attempts",
			logger.String("booking_id", b.ID),
			logger.String("error", rerr.Error()),
		)
	}

	s.applied(ctx, s.event(updated, b.Status, actor.ID))

	return updated, nil
}

func checkStart(b *domain.Booking, actor domain.Actor) error {
	if !domain.CanTransition(b.Status, domain.BookingStatusInProgress) {
		return domain.ErrIllegalTransition
	}
	if !b.AssignedTo(actor.ID) {
		return fmt.Errorf("%w: only the assigned worker can start this job", domain.ErrForbidden)
	}
	return nil
}

// Complete finishes an in-progress job and credits the worker. Completing an
// already completed booking re-runs the idempotent earning so a failed ledger
// write is repaired by retrying.
func (s *BookingService) Complete(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingService.Complete",
		trace.WithAttributes(attribute.String("booking.id", bookingID)))
	defer span.End()
	defer observe("complete", time.Now())

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, s.fail(span, "complete", fmt.Errorf("get booking: %w", err))
	}

	if b.Status == domain.BookingStatusCompleted {
		return s.settle(ctx, span, b, actor)
	}
	if !domain.CanTransition(b.Status, domain.BookingStatusCompleted) {
		return nil, s.fail(span, "complete", domain.ErrIllegalTransition)
	}
	if !canComplete(b, actor) {
		return nil, s.fail(span, "complete", fmt.Errorf("%w: only the assigned worker can complete this job", domain.ErrForbidden))
	}

	updated, err := s.bookingRepo.Transition(ctx, domain.Transition{
		BookingID:     b.ID,
		From:          []domain.BookingStatus{domain.BookingStatusInProgress},
		To:            domain.BookingStatusCompleted,
		ActorID:       actor.ID,
		At:            s.now(),
		RequireWorker: b.Worker(),
	})
	if errors.Is(err, domain.ErrTransitionConflict) {
		cur, rerr := s.bookingRepo.GetByID(ctx, bookingID)
		if rerr != nil {
			return nil, s.fail(span, "complete", fmt.Errorf("reload booking: %w", rerr))
		}
		if cur.Status == domain.BookingStatusCompleted {
			return s.settle(ctx, span, cur, actor)
		}
		return nil, s.fail(span, "complete", domain.ErrIllegalTransition)
	}
	if err != nil {
		return nil, s.fail(span, "complete", fmt.Errorf("complete booking: %w", err))
	}

	// событие уходит только после записи в кошелёк и ровно один раз на начисление
	_, created, err := s.ledger.RecordEarning(ctx, updated.Worker(), updated.ID, updated.WorkerEarning)
	if err != nil {
		s.logger.Error("earning not recorded for completed booking",
			logger.String("booking_id", updated.ID),
			logger.String("worker_id", updated.Worker()),
			logger.String("error", err.Error()),
		)
		return nil, s.fail(span, "complete", fmt.Errorf("record earning: %w", err))
	}
	if created {
		s.applied(ctx, s.event(updated, b.Status, actor.ID))
	}

	return updated, nil
}

func (s *BookingService) settle(ctx context.Context, span trace.Span, b *domain.Booking, actor domain.Actor) (*domain.Booking, error) {
	if !canComplete(b, actor) {
		return nil, s.fail(span, "complete", domain.ErrForbidden)
	}
	_, created, err := s.ledger.RecordEarning(ctx, b.Worker(), b.ID, b.WorkerEarning)
	if err != nil {
		return nil, s.fail(span, "complete", fmt.Errorf("record earning: %w", err))
	}
	if created {
		// первая попытка сменила статус, но начисление не записала
		s.applied(ctx, s.event(b, domain.BookingStatusInProgress, actor.ID))
	}
	return b, nil
}

func canComplete(b *domain.Booking, actor domain.Actor) bool {
	return b.AssignedTo(actor.ID) || actor.IsAdmin()
}

// Cancel retries on concurrent changes so the event names the worker that was
// actually bound when the cancellation applied.
func (s *BookingService) Cancel(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingService.Cancel",
		trace.WithAttributes(attribute.String("booking.id", bookingID)))
	defer span.End()
	defer observe("cancel", time.Now())

	for range cancelAttempts {
		b, err := s.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			return nil, s.fail(span, "cancel", fmt.Errorf("get booking: %w", err))
		}
		if b.CustomerID != actor.ID && !actor.IsAdmin() {
			return nil, s.fail(span, "cancel", fmt.Errorf("%w: only the customer can cancel this booking", domain.ErrForbidden))
		}
		if b.Status == domain.BookingStatusCancelled {
			return b, nil
		}
		if !domain.CanTransition(b.Status, domain.BookingStatusCancelled) {
			return nil, s.fail(span, "cancel", domain.ErrIllegalTransition)
		}

		t := domain.Transition{
			BookingID:   b.ID,
			From:        []domain.BookingStatus{b.Status},
			To:          domain.BookingStatusCancelled,
			ActorID:     actor.ID,
			At:          s.now(),
			ClearWorker: true,
			ClearOTP:    true,
		}
		if b.WorkerID == nil {
			t.RequireUnassigned = true
		} else {
			t.RequireWorker = *b.WorkerID
		}

		updated, err := s.bookingRepo.Transition(ctx, t)
		if errors.Is(err, domain.ErrTransitionConflict) {
			continue
		}
		if err != nil {
			return nil, s.fail(span, "cancel", fmt.Errorf("cancel booking: %w", err))
		}

		e := s.event(updated, b.Status, actor.ID)
		e.WorkerID = b.Worker()
		s.applied(ctx, e)

		return updated, nil
	}

	return nil, s.fail(span, "cancel", domain.ErrTransitionConflict)
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	return s.bookingRepo.List(ctx, filter)
}

func (s *BookingService) History(ctx context.Context, bookingID string) ([]*domain.HistoryEntry, error) {
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return s.bookingRepo.History(ctx, bookingID)
}

func (s *BookingService) workerEarning(price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(1).Sub(s.opts.CommissionRate)).Round(2)
}

func (s *BookingService) event(b *domain.Booking, from domain.BookingStatus, actorID string) domain.BookingEvent {
	return domain.BookingEvent{
		ID:           uuid.New().String(),
		BookingID:    b.ID,
		CustomerID:   b.CustomerID,
		WorkerID:     b.Worker(),
		CandidateIDs: b.CandidateIDs,
		CategoryID:   b.CategoryID,
		From:         from,
		To:           b.Status,
		ActorID:      actorID,
		Amount:       b.WorkerEarning,
		At:           b.UpdatedAt,
	}
}

// applied records a committed transition and publishes its event. Publish
// failures are logged; the transition stands.
func (s *BookingService) applied(ctx context.Context, e domain.BookingEvent) {
	metrics.BookingTransitions.WithLabelValues(string(e.To)).Inc()

	s.logger.Info("booking transitioned",
		logger.String("booking_id", e.BookingID),
		logger.String("from", string(e.From)),
		logger.String("to", string(e.To)),
		logger.String("actor_id", e.ActorID),
	)

	err := s.publisher.Publish(ctx, e)
	metrics.EventsPublished.WithLabelValues(e.RoutingKey(), metrics.Result(err)).Inc()
	if err != nil {
		s.logger.Error("failed to publish booking event",
			logger.String("booking_id", e.BookingID),
			logger.String("key", e.RoutingKey()),
			logger.String("error", err.Error()),
		)
	}
}

func (s *BookingService) fail(span trace.Span, op string, err error) error {
	metrics.BookingRejections.WithLabelValues(op, reason(err)).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrIllegalTransition):
		return "illegal_transition"
	case errors.Is(err, domain.ErrAlreadyAssigned):
		return "already_assigned"
	case errors.Is(err, domain.ErrInvalidOTP):
		return "invalid_otp"
	case errors.Is(err, domain.ErrTooManyOTPAttempts):
		return "otp_rate_limited"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrWorkerNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrTransitionConflict):
		return "conflict"
	default:
		return "internal"
	}
}

func observe(op string, start time.Time) {
	metrics.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func generateOTP(digits int) (string, error) {
	limit := big.NewInt(1)
	for range digits {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n.Int64()), nil
}

// pickCandidates takes up to size workers from free, rotating the start by
// offset so consecutive bookings reach different workers first.
func pickCandidates(free []string, customerID string, offset, size int) []string {
	out := make([]string, 0, size)
	for i := range free {
		if len(out) == size {
			break
		}
		id := free[(offset+i)%len(free)]
		if id == customerID {
			continue
		}
		out = append(out, id)
	}
	return out
}
