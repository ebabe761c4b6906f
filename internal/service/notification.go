package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/metrics"
	"github.com/stpnv0/rahi/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultNotificationLimit = 50
	rebuildBookingLimit      = 500
)

type NotificationService struct {
	repo         ports.NotificationRepo
	userRepo     ports.UserRepo
	categoryRepo ports.CategoryRepo
	bookingRepo  ports.BookingRepo
	pushers      []ports.NotificationPusher
	logger       logger.Logger
	now          func() time.Time
}

func NewNotificationService(
	repo ports.NotificationRepo,
	userRepo ports.UserRepo,
	categoryRepo ports.CategoryRepo,
	bookingRepo ports.BookingRepo,
	logger logger.Logger,
	pushers ...ports.NotificationPusher,
) *NotificationService {
	return &NotificationService{
		repo:         repo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		bookingRepo:  bookingRepo,
		pushers:      pushers,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

type delivery struct {
	user *domain.User
	n    *domain.Notification
}

// HandleEvent turns a booking event into notifications for every affected
// user. Storage and push failures are logged and never returned.
func (s *NotificationService) HandleEvent(ctx context.Context, e domain.BookingEvent) error {
	if e.BookingID == "" || e.To == "" {
		return fmt.Errorf("%w: event without booking or status", domain.ErrValidation)
	}

	for _, d := range s.compose(ctx, e, "") {
		s.store(ctx, d.n)
		s.push(ctx, d)
	}
	return nil
}

func (s *NotificationService) Emit(ctx context.Context, userID string, n *domain.Notification) (*domain.Notification, error) {
	if n.Title == "" || n.Message == "" {
		return nil, fmt.Errorf("%w: title and message are required", domain.ErrValidation)
	}
	if n.Type == "" {
		n.Type = domain.NotificationBookingUpdate
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	now := s.now()
	n.ID = newNotificationID(now)
	n.UserID = userID
	n.Read = false
	n.CreatedAt = now

	if err = s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("store notification: %w", err)
	}
	s.push(ctx, delivery{user: user, n: n})

	return n, nil
}

func (s *NotificationService) List(ctx context.Context, userID string, limit int) ([]*domain.Notification, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = defaultNotificationLimit
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id string) error {
	if err := s.repo.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	return n, nil
}

func (s *NotificationService) Clear(ctx context.Context, userID string) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	return nil
}

// Rebuild replaces a user's notifications with ones derived from the history
// of their bookings. Nothing is pushed.
func (s *NotificationService) Rebuild(ctx context.Context, userID string) (int, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return 0, fmt.Errorf("get user: %w", err)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingFilter{
		Participant: userID,
		Limit:       rebuildBookingLimit,
	})
	if err != nil {
		return 0, fmt.Errorf("list bookings: %w", err)
	}

	if err = s.repo.Clear(ctx, userID); err != nil {
		return 0, fmt.Errorf("clear notifications: %w", err)
	}

	count := 0
	for _, b := range bookings {
		history, err := s.bookingRepo.History(ctx, b.ID)
		if err != nil {
			return count, fmt.Errorf("booking history: %w", err)
		}

		for _, h := range history {
			e := domain.BookingEvent{
				BookingID:  b.ID,
				CustomerID: b.CustomerID,
				WorkerID:   h.WorkerID,
				CategoryID: b.CategoryID,
				From:       h.From,
				To:         h.To,
				ActorID:    h.ActorID,
				Amount:     b.WorkerEarning,
				At:         h.CreatedAt,
			}
			if h.To == domain.BookingStatusMatched {
				e.CandidateIDs = b.CandidateIDs
			}
			if h.To == domain.BookingStatusAccepted && b.Status == domain.BookingStatusAccepted {
				e.OTP = b.OTPStart
			}

			for _, d := range s.compose(ctx, e, userID) {
				if err = s.repo.Create(ctx, d.n); err != nil {
					return count, fmt.Errorf("store notification: %w", err)
				}
				count++
			}
		}
	}

	s.logger.Info("notifications rebuilt",
		logger.String("user_id", userID),
		logger.Int("bookings", len(bookings)),
		logger.Int("notifications", count),
	)

	return count, nil
}

// compose renders the notifications for e. When only is set, other recipients are skipped.
func (s *NotificationService) compose(ctx context.Context, e domain.BookingEvent, only string) []delivery {
	category := e.CategoryID
	var cat *domain.ServiceCategory
	if c, err := s.categoryRepo.GetByID(ctx, e.CategoryID); err == nil {
		cat = c
	}

	data, _ := json.Marshal(map[string]string{
		"booking_id": e.BookingID,
		"status":     string(e.To),
	})

	var out []delivery
	for _, r := range recipientsOf(e) {
		if only != "" && r.userID != only {
			continue
		}
		templates, ok := messages[messageKey{status: e.To, to: r.role}]
		if !ok {
			continue
		}

		user, err := s.userRepo.GetByID(ctx, r.userID)
		if err != nil {
			s.logger.Warn("notification recipient not found, using defaults",
				logger.String("user_id", r.userID),
				logger.String("error", err.Error()),
			)
			user = &domain.User{ID: r.userID, Language: domain.LanguageEnglish}
		}
		if cat != nil {
			category = cat.Name(user.Language)
		}

		for _, t := range templates {
			if t.arg == argOTP && e.OTP == "" {
				continue
			}
			title, body := t.render(user.Language, e, category)
			bookingID := e.BookingID
			at := e.At
			if at.IsZero() {
				at = s.now()
			}
			out = append(out, delivery{
				user: user,
				n: &domain.Notification{
					ID:        newNotificationID(at),
					UserID:    r.userID,
					Type:      t.kind,
					Title:     title,
					Message:   body,
					BookingID: &bookingID,
					Data:      data,
					CreatedAt: at,
				},
			})
		}
	}
	return out
}

type eventRecipient struct {
	userID string
	role   recipient
}

func recipientsOf(e domain.BookingEvent) []eventRecipient {
	out := []eventRecipient{{userID: e.CustomerID, role: toCustomer}}
	if e.WorkerID != "" {
		out = append(out, eventRecipient{userID: e.WorkerID, role: toWorker})
	}
	if e.To == domain.BookingStatusMatched {
		for _, id := range e.CandidateIDs {
			out = append(out, eventRecipient{userID: id, role: toCandidate})
		}
	}
	return out
}

func (s *NotificationService) store(ctx context.Context, n *domain.Notification) {
	err := s.repo.Create(ctx, n)
	metrics.NotificationsDelivered.WithLabelValues("store", metrics.Result(err)).Inc()
	if err != nil {
		s.logger.Error("failed to store notification",
			logger.String("user_id", n.UserID),
			logger.String("type", string(n.Type)),
			logger.String("error", err.Error()),
		)
	}
}

func (s *NotificationService) push(ctx context.Context, d delivery) {
	for _, p := range s.pushers {
		p.Push(ctx, d.user, d.n)
	}
}

func newNotificationID(at time.Time) string {
	return ulid.MustNew(ulid.Timestamp(at), rand.Reader).String()
}
