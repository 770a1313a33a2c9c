package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
	"github.com/elbashmohands1/hotelseatower/internal/core/ports"
)

type CreateBookingRequest struct {
	UserID   string `json:"-" validate:"required,uuid"`
	RoomID   string `json:"room_id" validate:"required,uuid"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Guests   int    `json:"guests" validate:"required,min=1"`
}

type CreateBookingResponse struct {
	BookingID   string         `json:"booking_id"`
	RoomID      string         `json:"room_id"`
	CheckIn     string         `json:"check_in"`
	CheckOut    string         `json:"check_out"`
	Guests      int            `json:"guests"`
	TotalAmount float64        `json:"total_amount"`
	Price       PriceBreakdown `json:"price"`
	Status      string         `json:"status"`
	CreatedAt   string         `json:"created_at"`
}

type QuoteResponse struct {
	RoomID    string         `json:"room_id"`
	Available bool           `json:"available"`
	Price     PriceBreakdown `json:"price"`
}

type BookingConfig struct {
	Fees            FeeConfig
	CalendarTTL     time.Duration
	PendingTTL      time.Duration
	CleanupInterval time.Duration
}

func DefaultBookingConfig() BookingConfig {
	return BookingConfig{
		Fees:            DefaultFeeConfig(),
		CalendarTTL:     time.Minute,
		PendingTTL:      30 * time.Minute,
		CleanupInterval: time.Minute,
	}
}

type BookingService struct {
	rooms    ports.RoomRepository
	store    ports.ReservationStore
	events   ports.EventPublisher
	checker  *AvailabilityChecker
	pricing  *PriceCalculator
	calendar *calendarCache
	validate *validator.Validate
	log      *slog.Logger
	cfg      BookingConfig
	now      func() time.Time
}

// NewBookingService wires the booking flow. cache and events may be nil:
// calendars are then always read from the store and notifications are skipped.
func NewBookingService(rooms ports.RoomRepository, store ports.ReservationStore, cache *redis.Client, events ports.EventPublisher, cfg BookingConfig, log *slog.Logger) *BookingService {
	if log == nil {
		log = slog.Default()
	}

	return &BookingService{
		rooms:    rooms,
		store:    store,
		events:   events,
		checker:  NewAvailabilityChecker(store),
		pricing:  NewPriceCalculator(cfg.Fees),
		calendar: &calendarCache{client: cache, ttl: cfg.CalendarTTL, log: log},
		validate: newValidator(),
		log:      log,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	userID := uuid.MustParse(req.UserID)
	roomID := uuid.MustParse(req.RoomID)

	dr, err := domain.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	room, err := s.loadRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if !room.Fits(req.Guests) {
		return nil, domain.ErrCapacityExceeded
	}

	available, err := s.checker.CheckAvailability(ctx, roomID, dr)
	if err != nil {
		s.log.Error("availability check failed", "room_id", roomID, "error", err)
		return nil, err
	}

	if !available {
		return nil, domain.ErrNotAvailable
	}

	price, err := s.pricing.Quote(room.Price, dr)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	reservation := &domain.Reservation{
		ID:          uuid.New(),
		RoomID:      roomID,
		UserID:      userID,
		Range:       dr,
		Guests:      req.Guests,
		TotalAmount: price.Total,
		Status:      domain.ReservationConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateIfAvailable(ctx, reservation); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.log.Warn("booking lost overlap race", "room_id", roomID, "range", dr.String())
			return nil, err
		}

		s.log.Error("failed to persist reservation", "room_id", roomID, "error", err)
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.calendar.invalidate(ctx, roomID)
	s.publish(ctx, domain.NewBookingEvent(domain.EventBookingConfirmed, reservation, room.Name, now))

	s.log.Info("booking created",
		"reservation_id", reservation.ID,
		"room_id", roomID,
		"user_id", userID,
		"range", dr.String(),
		"total", reservation.TotalAmount,
	)

	return &CreateBookingResponse{
		BookingID:   reservation.ID.String(),
		RoomID:      roomID.String(),
		CheckIn:     dr.CheckIn.Format(time.RFC3339),
		CheckOut:    dr.CheckOut.Format(time.RFC3339),
		Guests:      reservation.Guests,
		TotalAmount: reservation.TotalAmount,
		Price:       price,
		Status:      string(reservation.Status),
		CreatedAt:   now.Format(time.RFC3339),
	}, nil
}

func (s *BookingService) CheckAvailability(ctx context.Context, roomID uuid.UUID, dr domain.DateRange) (bool, error) {
	return s.checker.CheckAvailability(ctx, roomID, dr)
}

func (s *BookingService) CalculatePrice(rate float64, dr domain.DateRange) (float64, error) {
	return s.pricing.CalculatePrice(rate, dr)
}

func (s *BookingService) Quote(ctx context.Context, roomID uuid.UUID, dr domain.DateRange) (*QuoteResponse, error) {
	room, err := s.loadRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	price, err := s.pricing.Quote(room.Price, dr)
	if err != nil {
		return nil, err
	}

	available, err := s.checker.CheckAvailability(ctx, roomID, dr)
	if err != nil {
		return nil, err
	}

	return &QuoteResponse{RoomID: roomID.String(), Available: available, Price: price}, nil
}

// RoomCalendar lists occupied spans that have not ended yet, ordered by check-in.
func (s *BookingService) RoomCalendar(ctx context.Context, roomID uuid.UUID) ([]CalendarEntry, error) {
	entries, version, ok := s.calendar.get(ctx, roomID)
	if ok {
		return entries, nil
	}

	if _, err := s.loadRoom(ctx, roomID); err != nil {
		return nil, err
	}

	existing, err := s.store.FindActiveByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find reservations for room %s: %w", roomID, err)
	}

	now := s.now()
	entries = make([]CalendarEntry, 0, len(existing))
	for _, r := range existing {
		if !r.Occupies() || !r.Range.CheckOut.After(now) {
			continue
		}
		entries = append(entries, CalendarEntry{CheckIn: r.Range.CheckIn, CheckOut: r.Range.CheckOut, Status: r.Status})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].CheckIn.Before(entries[j].CheckIn) })

	s.calendar.set(ctx, roomID, version, entries)
	return entries, nil
}

func (s *BookingService) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]domain.Reservation, error) {
	return s.store.ListByUser(ctx, userID)
}

// GetBooking returns a reservation visible to the caller: its owner or an admin.
func (s *BookingService) GetBooking(ctx context.Context, id, callerID uuid.UUID, isAdmin bool) (*domain.Reservation, error) {
	r, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && r.UserID != callerID {
		return nil, domain.ErrForbidden
	}

	return r, nil
}

// CancelBooking is the guest-side cancellation. Cancelling twice is a no-op.
func (s *BookingService) CancelBooking(ctx context.Context, id, callerID uuid.UUID) (*domain.Reservation, error) {
	r, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.UserID != callerID {
		return nil, domain.ErrForbidden
	}

	if r.Status == domain.ReservationCancelled {
		return r, nil
	}

	updated, err := s.store.UpdateStatus(ctx, id, domain.ReservationCancelled)
	if err != nil {
		s.log.Error("failed to cancel reservation", "reservation_id", id, "error", err)
		return nil, err
	}

	s.calendar.invalidate(ctx, updated.RoomID)
	s.publish(ctx, domain.NewBookingEvent(domain.EventBookingCancelled, updated, s.roomName(ctx, updated.RoomID), s.now()))

	s.log.Info("booking cancelled", "reservation_id", id, "user_id", callerID)
	return updated, nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*domain.Reservation, error) {
	status, err := domain.ParseReservationStatus(rawStatus)
	if err != nil || !status.AdminSettable() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		if !errors.Is(err, domain.ErrReservationNotFound) && !errors.Is(err, domain.ErrConflict) {
			s.log.Error("failed to update reservation status", "reservation_id", id, "status", status, "error", err)
		}
		return nil, err
	}

	s.calendar.invalidate(ctx, updated.RoomID)
	s.publish(ctx, domain.NewBookingEvent(domain.EventBookingStatusChanged, updated, s.roomName(ctx, updated.RoomID), s.now()))

	s.log.Info("booking status updated", "reservation_id", id, "status", status)
	return updated, nil
}

func (s *BookingService) ListBookings(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, int, error) {
	if filter.Status != "" {
		if _, err := domain.ParseReservationStatus(string(filter.Status)); err != nil {
			return nil, 0, err
		}
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	if filter.Limit > 100 {
		filter.Limit = 100
	}

	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.store.List(ctx, filter)
}

func (s *BookingService) RoomBookings(ctx context.Context, roomID uuid.UUID, window domain.DateRange) ([]domain.Reservation, error) {
	if _, err := s.loadRoom(ctx, roomID); err != nil {
		return nil, err
	}

	return s.store.ListByRoomWithin(ctx, roomID, window)
}

func (s *BookingService) loadRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	if roomID == uuid.Nil {
		return nil, domain.ErrInvalidRoomID
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil, err
		}

		s.log.Error("failed to load room", "room_id", roomID, "error", err)
		return nil, fmt.Errorf("load room %s: %w", roomID, err)
	}

	return room, nil
}

func (s *BookingService) roomName(ctx context.Context, roomID uuid.UUID) string {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return ""
	}

	return room.Name
}

func (s *BookingService) publish(ctx context.Context, event domain.BookingEvent) {
	if s.events == nil {
		return
	}

	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn("failed to publish booking event",
			"type", event.Type,
			"reservation_id", event.ReservationID,
			"error", err,
		)
	}
}

func (s *BookingService) RunBackgroundCleanup(ctx context.Context) {
	interval := s.cfg.CleanupInterval
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Info("pending reservation cleanup started", "interval", interval, "pending_ttl", s.cfg.PendingTTL)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("pending reservation cleanup stopped")
			return
		case <-ticker.C:
			s.processStalePending(ctx)
		}
	}
}

func (s *BookingService) processStalePending(ctx context.Context) {
	if s.cfg.PendingTTL <= 0 {
		return
	}

	ids, err := s.store.CancelStalePending(ctx, s.now().Add(-s.cfg.PendingTTL))
	if err != nil {
		s.log.Error("failed to cancel stale pending reservations", "error", err)
		return
	}

	if len(ids) == 0 {
		return
	}

	s.log.Info("stale pending reservations cancelled", "count", len(ids))
	for _, id := range ids {
		r, err := s.store.GetByID(ctx, id)
		if err != nil {
			s.log.Warn("cancelled reservation vanished", "reservation_id", id, "error", err)
			continue
		}
		s.calendar.invalidate(ctx, r.RoomID)
	}
}

const (
	statsWindowDays  = 30
	statsRecentLimit = 5
)

// Stats builds the admin dashboard. RevenueByDay always holds one entry per
// UTC day of the window, zero-filled, oldest first.
func (s *BookingService) Stats(ctx context.Context) (domain.BookingStats, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(statsWindowDays - 1))

	stats, err := s.store.Stats(ctx, since, statsRecentLimit)
	if err != nil {
		s.log.Error("failed to aggregate booking stats", "error", err)
		return domain.BookingStats{}, fmt.Errorf("booking stats: %w", err)
	}

	rooms, err := s.rooms.List(ctx, domain.RoomFilter{})
	if err != nil {
		return domain.BookingStats{}, fmt.Errorf("count rooms: %w", err)
	}
	stats.TotalRooms = len(rooms)

	byDay := make(map[time.Time]float64, len(stats.RevenueByDay))
	for _, d := range stats.RevenueByDay {
		byDay[d.Day.UTC()] = d.Revenue
	}

	stats.RevenueByDay = make([]domain.DailyRevenue, 0, statsWindowDays)
	for day := since; !day.After(today); day = day.AddDate(0, 0, 1) {
		stats.RevenueByDay = append(stats.RevenueByDay, domain.DailyRevenue{Day: day, Revenue: byDay[day]})
	}

	return stats, nil
}
