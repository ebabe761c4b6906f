package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/handler/dto"
	"github.com/stpnv0/rahi/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	History(ctx context.Context, bookingID string) ([]*domain.HistoryEntry, error)
	Accept(ctx context.Context, bookingID, workerID string) (*domain.Booking, error)
	Reject(ctx context.Context, bookingID, workerID string) error
	Start(ctx context.Context, bookingID string, actor domain.Actor, otp string) (*domain.Booking, error)
	Complete(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error)
}

type WorkerSvc interface {
	CreateProfile(ctx context.Context, userID, bio string) (*domain.WorkerProfile, error)
	GetProfile(ctx context.Context, userID string) (*domain.WorkerView, error)
	SetStatus(ctx context.Context, userID, status string) (*domain.WorkerView, error)
}

type WalletSvc interface {
	Balance(ctx context.Context, workerID string) (decimal.Decimal, error)
	Transactions(ctx context.Context, workerID string, limit int) ([]*domain.WalletTransaction, error)
	Summary(ctx context.Context, workerID string) (*domain.EarningsSummary, error)
	Withdraw(ctx context.Context, workerID string, amount decimal.Decimal, upiID string) (*domain.WalletTransaction, error)
	RecordBonus(ctx context.Context, workerID string, amount decimal.Decimal, description string) (*domain.WalletTransaction, error)
	Reconcile(ctx context.Context, workerID string) (*domain.Reconciliation, error)
}

type NotificationSvc interface {
	List(ctx context.Context, userID string, limit int) ([]*domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) (int, error)
	Clear(ctx context.Context, userID string) error
	Rebuild(ctx context.Context, userID string) (int, error)
}

type CategorySvc interface {
	List(ctx context.Context) ([]*domain.ServiceCategory, error)
}

type TokenIssuer interface {
	Issue(user *domain.User) (string, time.Time, error)
}

type Services struct {
	Users         UserSvc
	Bookings      BookingSvc
	Workers       WorkerSvc
	Wallet        WalletSvc
	Notifications NotificationSvc
	Categories    CategorySvc
	Tokens        TokenIssuer
}

type Handler struct {
	userService         UserSvc
	bookingService      BookingSvc
	workerService       WorkerSvc
	walletService       WalletSvc
	notificationService NotificationSvc
	categoryService     CategorySvc
	tokens              TokenIssuer
	hub                 StreamHub
}

func NewHandler(s Services, hub StreamHub) *Handler {
	return &Handler{
		userService:         s.Users,
		bookingService:      s.Bookings,
		workerService:       s.Workers,
		walletService:       s.Wallet,
		notificationService: s.Notifications,
		categoryService:     s.Categories,
		tokens:              s.Tokens,
		hub:                 hub,
	}
}

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// actor is set by the auth middleware on every protected route.
func actor(c *ginext.Context) domain.Actor {
	a, _ := middleware.ActorFrom(c)
	return a
}

func badRequest(c *ginext.Context, msg string) {
	c.Set("error", msg)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Code: dto.CodeValidation})
}

func queryLimit(c *ginext.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		badRequest(c, "limit must be a non-negative integer")
		return 0, false
	}
	return n, true
}

// walletOwner is the caller for workers; admins may name any worker with ?worker_id=.
func walletOwner(c *ginext.Context) string {
	a := actor(c)
	if a.IsAdmin() {
		if id := c.Query("worker_id"); id != "" {
			return id
		}
	}
	return a.ID
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	status, code, msg := classify(err)
	c.JSON(status, dto.ErrorResponse{Error: msg, Code: code})
}

// classify hides wrapped context: the client sees the sentinel's own message.
func classify(err error) (int, string, string) {
	type rule struct {
		target error
		status int
		code   string
	}
	rules := []rule{
		{domain.ErrBookingNotFound, http.StatusNotFound, dto.CodeNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound, dto.CodeNotFound},
		{domain.ErrWorkerNotFound, http.StatusNotFound, dto.CodeNotFound},
		{domain.ErrCategoryNotFound, http.StatusNotFound, dto.CodeNotFound},
		{domain.ErrNotificationNotFound, http.StatusNotFound, dto.CodeNotFound},

		{domain.ErrAlreadyAssigned, http.StatusConflict, dto.CodeAlreadyAssigned},
		{domain.ErrIllegalTransition, http.StatusConflict, dto.CodeIllegalTransition},
		{domain.ErrTransitionConflict, http.StatusConflict, dto.CodeConflict},
		{domain.ErrProfileExists, http.StatusConflict, dto.CodeConflict},
		{domain.ErrPhoneTaken, http.StatusConflict, dto.CodeConflict},

		{domain.ErrInvalidOTP, http.StatusUnprocessableEntity, dto.CodeInvalidOTP},
		{domain.ErrInsufficientBalance, http.StatusUnprocessableEntity, dto.CodeInsufficient},
		{domain.ErrBelowMinimum, http.StatusUnprocessableEntity, dto.CodeBelowMinimum},
		{domain.ErrInvalidUpiID, http.StatusUnprocessableEntity, dto.CodeInvalidUpiID},

		{domain.ErrTooManyOTPAttempts, http.StatusTooManyRequests, dto.CodeTooManyAttempts},
		{domain.ErrForbidden, http.StatusForbidden, dto.CodeForbidden},
		{domain.ErrUnauthorized, http.StatusUnauthorized, dto.CodeUnauthorized},
		{domain.ErrValidation, http.StatusBadRequest, dto.CodeValidation},
		{domain.ErrNetworkFailure, http.StatusServiceUnavailable, dto.CodeUnavailable},
	}

	for _, r := range rules {
		if errors.Is(err, r.target) {
			msg := r.target.Error()
			if r.target == domain.ErrValidation {
				// у валидации текст полезен клиенту, префиксы оборачивания отрезаем
				msg = err.Error()
				if i := strings.Index(msg, r.target.Error()); i > 0 {
					msg = msg[i:]
				}
			}
			return r.status, r.code, msg
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return http.StatusServiceUnavailable, dto.CodeUnavailable, domain.ErrNetworkFailure.Error()
	}
	return http.StatusInternalServerError, dto.CodeInternal, "internal server error"
}
