package router

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ajit-max/event/internal/domain"
)

// memStore держит пользователей, события и брони в памяти
// и повторяет семантику postgres-репозиториев.
type memStore struct {
	mu       sync.Mutex
	users    map[string]*domain.User
	events   map[string]*domain.Event
	bookings map[string]*domain.Booking
	now      func() time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*domain.User),
		events:   make(map[string]*domain.Event),
		bookings: make(map[string]*domain.Booking),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	u.CreatedAt = r.s.now()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r memUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	cp.PasswordHash = ""
	return &cp, nil
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r memUsers) List(_ context.Context) ([]*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		cp := *u
		cp.PasswordHash = ""
		out = append(out, &cp)
	}
	return out, nil
}

type memEvents struct{ s *memStore }

func copyEvent(e *domain.Event) *domain.Event {
	cp := *e
	cp.TicketTypes = append([]domain.TicketType(nil), e.TicketTypes...)
	return &cp
}

func (r memEvents) Create(_ context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.CreatedAt = r.s.now()
	e.UpdatedAt = e.CreatedAt
	r.s.events[e.ID] = copyEvent(e)
	return nil
}

func (r memEvents) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return copyEvent(e), nil
}

func (r memEvents) list(published bool) []*domain.Event {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.Event, 0, len(r.s.events))
	for _, e := range r.s.events {
		if published && !e.IsPublished {
			continue
		}
		out = append(out, copyEvent(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (r memEvents) ListPublished(_ context.Context) ([]*domain.Event, error) {
	return r.list(true), nil
}

func (r memEvents) ListAll(_ context.Context) ([]*domain.Event, error) {
	return r.list(false), nil
}

func (r memEvents) Update(_ context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.events[e.ID]
	if !ok {
		return domain.ErrEventNotFound
	}
	e.OrganizerID = current.OrganizerID
	e.UpdatedAt = r.s.now()
	r.s.events[e.ID] = copyEvent(e)
	return nil
}

func (r memEvents) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.s.events, id)
	for bid, b := range r.s.bookings {
		if b.EventID == id {
			delete(r.s.bookings, bid)
		}
	}
	return nil
}

type memBookings struct{ s *memStore }

func (r memBookings) Create(_ context.Context, b *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[b.EventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	if !e.IsPublished {
		return domain.ErrNoAvailableTickets
	}

	if b.TicketType == "" {
		if e.AvailableTickets < b.Quantity {
			return domain.ErrNoAvailableTickets
		}
		e.AvailableTickets -= b.Quantity
	} else {
		i := ticketIndex(e, b.TicketType)
		if i < 0 || e.TicketTypes[i].Quantity < b.Quantity {
			return domain.ErrNoAvailableTickets
		}
		e.TicketTypes[i].Quantity -= b.Quantity
	}

	cp := *b
	r.s.bookings[b.ID] = &cp
	return nil
}

func ticketIndex(e *domain.Event, name string) int {
	for i, t := range e.TicketTypes {
		if t.Name == name {
			return i
		}
	}
	return -1
}

func (r memBookings) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r memBookings) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.Booking, 0)
	for _, b := range r.s.bookings {
		if b.UserID == userID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r memBookings) Confirm(_ context.Context, id string, ttl time.Duration) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}
	if r.s.now().After(b.CreatedAt.Add(ttl)) {
		return nil, domain.ErrBookingExpired
	}
	b.Status = domain.BookingStatusConfirmed
	b.UpdatedAt = r.s.now()
	cp := *b
	return &cp, nil
}

func (r memBookings) CancelExpired(_ context.Context, ttl time.Duration) ([]*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Booking
	for _, b := range r.s.bookings {
		if b.Status != domain.BookingStatusPending || !r.s.now().After(b.CreatedAt.Add(ttl)) {
			continue
		}
		b.Status = domain.BookingStatusCancelled
		if e, ok := r.s.events[b.EventID]; ok {
			if i := ticketIndex(e, b.TicketType); i >= 0 {
				e.TicketTypes[i].Quantity += b.Quantity
			} else {
				e.AvailableTickets += b.Quantity
			}
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}
