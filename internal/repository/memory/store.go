// Package memory keeps every repository in process memory behind one lock.
// It backs dev mode and the lifecycle property tests.
package memory

import (
	"sync"

	"github.com/stpnv0/rahi/internal/domain"
)

type Store struct {
	mu            sync.RWMutex
	users         map[string]*domain.User
	phones        map[string]string
	workers       map[string]*domain.WorkerProfile
	bookings      map[string]*domain.Booking
	history       map[string][]*domain.HistoryEntry
	transactions  []*domain.WalletTransaction
	earnings      map[string]*domain.WalletTransaction
	notifications map[string][]*domain.Notification
	categories    map[string]*domain.ServiceCategory
	categoryOrder []string
}

func New() *Store {
	s := &Store{
		users:         make(map[string]*domain.User),
		phones:        make(map[string]string),
		workers:       make(map[string]*domain.WorkerProfile),
		bookings:      make(map[string]*domain.Booking),
		history:       make(map[string][]*domain.HistoryEntry),
		earnings:      make(map[string]*domain.WalletTransaction),
		notifications: make(map[string][]*domain.Notification),
		categories:    make(map[string]*domain.ServiceCategory),
	}
	for _, c := range domain.DefaultCategories() {
		s.categories[c.ID] = c
		s.categoryOrder = append(s.categoryOrder, c.ID)
	}
	return s
}

func (s *Store) Bookings() *BookingRepo { return &BookingRepo{s: s} }
func (s *Store) Wallet() *WalletRepo { return &WalletRepo{s: s} }
func (s *Store) Workers() *WorkerRepo { return &WorkerRepo{s: s} }
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }
func (s *Store) Notifications() *NotificationRepo { return &NotificationRepo{s: s} }
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

func cloneBooking(b *domain.Booking) *domain.Booking {
	cp := *b
	if b.WorkerID != nil {
		w := *b.WorkerID
		cp.WorkerID = &w
	}
	if b.CandidateIDs != nil {
		cp.CandidateIDs = append([]string(nil), b.CandidateIDs...)
	}
	return &cp
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}
