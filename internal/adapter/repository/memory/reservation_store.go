// Package memory keeps rooms and reservations in process memory. It backs
// tests and STORE_DRIVER=memory local runs.
package memory

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
)

type ReservationStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*domain.Reservation
	now   func() time.Time
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{
		items: make(map[uuid.UUID]*domain.Reservation),
		now:   time.Now,
	}
}

func (s *ReservationStore) FindActiveByRoom(_ context.Context, roomID uuid.UUID) ([]domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Reservation
	for _, r := range s.items {
		if r.RoomID == roomID && r.Occupies() {
			out = append(out, clone(r))
		}
	}

	return out, nil
}

// CreateIfAvailable holds the write lock across the overlap scan and the insert.
func (s *ReservationStore) CreateIfAvailable(_ context.Context, reservation *domain.Reservation) error {
	if err := reservation.Range.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if reservation.Occupies() && s.conflictLocked(reservation.RoomID, reservation.ID, reservation.Range) {
		return domain.ErrConflict
	}

	if reservation.ID == uuid.Nil {
		reservation.ID = uuid.New()
	}

	if reservation.CreatedAt.IsZero() {
		reservation.CreatedAt = s.now().UTC()
	}
	if reservation.UpdatedAt.IsZero() {
		reservation.UpdatedAt = reservation.CreatedAt
	}

	stored := clone(reservation)
	stored.History = []domain.StatusChange{{
		ID:            uuid.New(),
		ReservationID: stored.ID,
		Status:        stored.Status,
		CreatedAt:     stored.CreatedAt,
	}}
	s.items[stored.ID] = &stored

	return nil
}

func (s *ReservationStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.items[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}

	c := clone(r)
	return &c, nil
}

func (s *ReservationStore) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Reservation
	for _, r := range s.items {
		if r.UserID == userID {
			out = append(out, clone(r))
		}
	}

	sortNewestFirst(out)
	return out, nil
}

func (s *ReservationStore) List(_ context.Context, filter domain.ReservationFilter) ([]domain.Reservation, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []domain.Reservation
	for _, r := range s.items {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		all = append(all, clone(r))
	}

	sortNewestFirst(all)

	total := len(all)
	if filter.Offset >= total {
		return []domain.Reservation{}, total, nil
	}

	end := total
	if filter.Limit > 0 && filter.Offset+filter.Limit < total {
		end = filter.Offset + filter.Limit
	}

	return all[filter.Offset:end], total, nil
}

func (s *ReservationStore) ListByRoomWithin(_ context.Context, roomID uuid.UUID, window domain.DateRange) ([]domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Reservation
	for _, r := range s.items {
		if r.RoomID == roomID && r.Range.Contains(window) {
			out = append(out, clone(r))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Range.CheckIn.Before(out[j].Range.CheckIn) })
	return out, nil
}

func (s *ReservationStore) UpdateStatus(_ context.Context, id uuid.UUID, status domain.ReservationStatus) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.items[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}

	if !r.Occupies() && status.Occupies() && s.conflictLocked(r.RoomID, r.ID, r.Range) {
		return nil, domain.ErrConflict
	}

	s.setStatusLocked(r, status)

	c := clone(r)
	return &c, nil
}

func (s *ReservationStore) ArchiveByRoom(_ context.Context, roomID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, r := range s.items {
		if r.RoomID == roomID && r.Status == domain.ReservationConfirmed {
			s.setStatusLocked(r, domain.ReservationArchived)
			n++
		}
	}

	return n, nil
}

// CancelStalePending keys on UpdatedAt, which every status write refreshes,
// so an old reservation moved back to pending gets a full TTL again.
func (s *ReservationStore) CancelStalePending(_ context.Context, pendingBefore time.Time) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []uuid.UUID
	for _, r := range s.items {
		if r.Status == domain.ReservationPending && r.UpdatedAt.Before(pendingBefore) {
			s.setStatusLocked(r, domain.ReservationCancelled)
			ids = append(ids, r.ID)
		}
	}

	return ids, nil
}

func (s *ReservationStore) Stats(_ context.Context, since time.Time, recentLimit int) (domain.BookingStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.BookingStats{StatusCounts: make(map[domain.ReservationStatus]int)}
	daily := make(map[time.Time]float64)

	var confirmed []domain.Reservation
	for _, r := range s.items {
		stats.StatusCounts[r.Status]++
		if r.Status != domain.ReservationConfirmed {
			continue
		}

		stats.ConfirmedCount++
		stats.TotalRevenue += r.TotalAmount
		confirmed = append(confirmed, clone(r))

		if !r.CreatedAt.Before(since) {
			daily[r.CreatedAt.UTC().Truncate(24*time.Hour)] += r.TotalAmount
		}
	}

	stats.TotalRevenue = math.Round(stats.TotalRevenue*100) / 100

	sortNewestFirst(confirmed)
	if recentLimit >= 0 && len(confirmed) > recentLimit {
		confirmed = confirmed[:recentLimit]
	}
	stats.Recent = confirmed

	for day, revenue := range daily {
		stats.RevenueByDay = append(stats.RevenueByDay, domain.DailyRevenue{Day: day, Revenue: math.Round(revenue*100) / 100})
	}
	sort.Slice(stats.RevenueByDay, func(i, j int) bool { return stats.RevenueByDay[i].Day.Before(stats.RevenueByDay[j].Day) })

	return stats, nil
}

func (s *ReservationStore) conflictLocked(roomID, self uuid.UUID, dr domain.DateRange) bool {
	for _, r := range s.items {
		if r.ID != self && r.RoomID == roomID && r.ConflictsWith(dr) {
			return true
		}
	}

	return false
}

func (s *ReservationStore) setStatusLocked(r *domain.Reservation, status domain.ReservationStatus) {
	now := s.now().UTC()
	r.Status = status
	r.UpdatedAt = now
	r.History = append(r.History, domain.StatusChange{
		ID:            uuid.New(),
		ReservationID: r.ID,
		Status:        status,
		CreatedAt:     now,
	})
}

func clone(r *domain.Reservation) domain.Reservation {
	c := *r
	c.History = append([]domain.StatusChange(nil), r.History...)
	return c
}

func sortNewestFirst(rs []domain.Reservation) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].CreatedAt.After(rs[j].CreatedAt) })
}
