package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, customer_id, worker_id, category_id, description, address, city,
       latitude, longitude, base_price, worker_earning, total_price, is_emergency, is_instant,
       scheduled_at, otp_start, otp_verified, candidate_ids, status, created_at, started_at,
       completed_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.CustomerID, &b.WorkerID, &b.CategoryID, &b.Description, &b.Address, &b.City,
		&b.Latitude, &b.Longitude, &b.BasePrice, &b.WorkerEarning, &b.TotalPrice, &b.IsEmergency, &b.IsInstant,
		&b.ScheduledAt, &b.OTPStart, &b.OTPVerified, pq.Array(&b.CandidateIDs), &b.Status, &b.CreatedAt, &b.StartedAt,
		&b.CompletedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO bookings (id, customer_id, category_id, description, address, city,
                      latitude, longitude, base_price, worker_earning, total_price, is_emergency,
                      is_instant, scheduled_at, otp_start, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.CustomerID, b.CategoryID, b.Description, b.Address, b.City,
		b.Latitude, b.Longitude, b.BasePrice, b.WorkerEarning, b.TotalPrice, b.IsEmergency,
		b.IsInstant, b.ScheduledAt, b.OTPStart, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = insertHistory(ctx, tx, &domain.HistoryEntry{
		BookingID: b.ID,
		To:        b.Status,
		ActorID:   b.CustomerID,
		CreatedAt: b.CreatedAt,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || badID(err) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.Status) > 0 {
		where = append(where, "status = ANY("+arg(pq.Array(f.Status))+")")
	}
	if f.CustomerID != "" {
		where = append(where, "customer_id::text = "+arg(f.CustomerID))
	}
	if f.WorkerID != "" {
		where = append(where, "worker_id::text = "+arg(f.WorkerID))
	}
	if f.Unassigned {
		where = append(where, "worker_id IS NULL")
	}
	if f.Participant != "" {
		p := arg(f.Participant)
		where = append(where, fmt.Sprintf("(customer_id::text = %[1]s OR worker_id::text = %[1]s OR %[1]s = ANY(candidate_ids))", p))
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		query += " LIMIT " + arg(f.Limit)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// Transition locks the row, then applies a conditional UPDATE. The WHERE clause
// repeats the From and worker checks so the row count alone decides the outcome.
func (r *BookingRepository) Transition(ctx context.Context, t domain.Transition) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		from     domain.BookingStatus
		workerID sql.NullString
	)
	lockQuery := `SELECT status, worker_id FROM bookings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, t.BookingID).Scan(&from, &workerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) || badID(err) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	args := []any{t.BookingID, t.To, t.At}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	set := []string{"status = $2", "updated_at = $3"}
	switch {
	case t.AssignWorker != "":
		set = append(set, "worker_id = "+arg(t.AssignWorker))
	case t.ClearWorker:
		set = append(set, "worker_id = NULL")
	}
	if t.Candidates != nil {
		set = append(set, "candidate_ids = "+arg(pq.Array(t.Candidates)))
	}
	switch {
	case t.VerifyOTP:
		set = append(set, "otp_verified = TRUE")
	case t.ClearOTP:
		set = append(set, "otp_verified = FALSE")
	}
	switch t.To {
	case domain.BookingStatusInProgress:
		set = append(set, "started_at = $3")
	case domain.BookingStatusCompleted:
		set = append(set, "completed_at = $3")
	}

	where := []string{"id = $1", "status = ANY(" + arg(pq.Array(t.From)) + ")"}
	if t.RequireUnassigned {
		where = append(where, "worker_id IS NULL")
	}
	if t.RequireWorker != "" {
		where = append(where, "worker_id::text = "+arg(t.RequireWorker))
	}

	query := `UPDATE bookings SET ` + strings.Join(set, ", ") +
		` WHERE ` + strings.Join(where, " AND ") +
		` RETURNING ` + bookingColumns

	b, err := scanBooking(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		// Условие не выполнено: статус или исполнитель уже изменились
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransitionConflict
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}

	entryWorker := workerID.String
	if t.AssignWorker != "" {
		entryWorker = t.AssignWorker
	}
	if err = insertHistory(ctx, tx, &domain.HistoryEntry{
		BookingID: b.ID,
		From:      from,
		To:        t.To,
		WorkerID:  entryWorker,
		ActorID:   t.ActorID,
		CreatedAt: t.At,
	}); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transition: %w", err)
	}
	return b, nil
}

func insertHistory(ctx context.Context, tx *sql.Tx, h *domain.HistoryEntry) error {
	query := `INSERT INTO booking_events (id, booking_id, from_status, to_status, worker_id, actor_id, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := tx.ExecContext(
		ctx, query, uuid.New().String(), h.BookingID, h.From,
		h.To, h.WorkerID, h.ActorID, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking event: %w", err)
	}
	return nil
}

func (r *BookingRepository) History(ctx context.Context, bookingID string) ([]*domain.HistoryEntry, error) {
	query := `SELECT id, booking_id, from_status, to_status, worker_id, actor_id, created_at
              FROM booking_events
              WHERE booking_id = $1
              ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		if badID(err) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("booking history: %w", err)
	}
	defer rows.Close()

	var res []*domain.HistoryEntry
	for rows.Next() {
		var h domain.HistoryEntry
		if err = rows.Scan(&h.ID, &h.BookingID, &h.From, &h.To, &h.WorkerID, &h.ActorID, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking event: %w", err)
		}
		res = append(res, &h)
	}

	return res, rows.Err()
}

func (r *BookingRepository) CountActiveByWorker(ctx context.Context, workerID string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings
              WHERE worker_id::text = $1 AND status = ANY($2)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, workerID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return 0, fmt.Errorf("count active bookings: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan active bookings: %w", err)
	}
	return n, nil
}
