package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"
	"github.com/stpnv0/rahi/internal/domain"
)

type BookingRepo struct {
	s *Store
}

func (r *BookingRepo) Create(_ context.Context, b *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[b.ID]; ok {
		return fmt.Errorf("booking %s already exists", b.ID)
	}
	r.s.bookings[b.ID] = cloneBooking(b)
	r.s.history[b.ID] = append(r.s.history[b.ID], &domain.HistoryEntry{
		ID:        uuid.New().String(),
		BookingID: b.ID,
		To:        b.Status,
		ActorID:   b.CustomerID,
		CreatedAt: b.CreatedAt,
	})
	return nil
}

func (r *BookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

func (r *BookingRepo) List(_ context.Context, f domain.BookingFilter) ([]*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var res []*domain.Booking
	for _, b := range r.s.bookings {
		if matches(b, f) {
			res = append(res, cloneBooking(b))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].ID > res[j].ID
		}
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	if f.Limit > 0 && len(res) > f.Limit {
		res = res[:f.Limit]
	}
	return res, nil
}

func matches(b *domain.Booking, f domain.BookingFilter) bool {
	if len(f.Status) > 0 && !slices.Contains(f.Status, b.Status) {
		return false
	}
	if f.CustomerID != "" && b.CustomerID != f.CustomerID {
		return false
	}
	if f.WorkerID != "" && !b.AssignedTo(f.WorkerID) {
		return false
	}
	if f.Unassigned && b.WorkerID != nil {
		return false
	}
	if p := f.Participant; p != "" {
		if b.CustomerID != p && !b.AssignedTo(p) && !slices.Contains(b.CandidateIDs, p) {
			return false
		}
	}
	return true
}

func (r *BookingRepo) Transition(_ context.Context, t domain.Transition) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[t.BookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if !slices.Contains(t.From, b.Status) {
		return nil, domain.ErrTransitionConflict
	}
	if t.RequireUnassigned && b.WorkerID != nil {
		return nil, domain.ErrTransitionConflict
	}
	if t.RequireWorker != "" && !b.AssignedTo(t.RequireWorker) {
		return nil, domain.ErrTransitionConflict
	}

	from := b.Status
	worker := b.Worker()

	switch {
	case t.AssignWorker != "":
		w := t.AssignWorker
		b.WorkerID = &w
		worker = w
	case t.ClearWorker:
		b.WorkerID = nil
	}
	if t.Candidates != nil {
		b.CandidateIDs = append([]string(nil), t.Candidates...)
	}
	switch {
	case t.VerifyOTP:
		b.OTPVerified = true
	case t.ClearOTP:
		b.OTPVerified = false
	}

	at := t.At
	switch t.To {
	case domain.BookingStatusInProgress:
		b.StartedAt = &at
	case domain.BookingStatusCompleted:
		b.CompletedAt = &at
	}
	b.Status = t.To
	b.UpdatedAt = at

	r.s.history[b.ID] = append(r.s.history[b.ID], &domain.HistoryEntry{
		ID:        uuid.New().String(),
		BookingID: b.ID,
		From:      from,
		To:        t.To,
		WorkerID:  worker,
		ActorID:   t.ActorID,
		CreatedAt: at,
	})

	return cloneBooking(b), nil
}

func (r *BookingRepo) History(_ context.Context, bookingID string) ([]*domain.HistoryEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := r.s.history[bookingID]
	res := make([]*domain.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		res = append(res, clonePtr(e))
	}
	return res, nil
}

func (r *BookingRepo) CountActiveByWorker(_ context.Context, workerID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, b := range r.s.bookings {
		if b.AssignedTo(workerID) && slices.Contains(domain.ActiveStatuses, b.Status) {
			n++
		}
	}
	return n, nil
}
