package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
	"github.com/elbashmohands1/hotelseatower/internal/core/ports/mocks"
	"github.com/elbashmohands1/hotelseatower/internal/core/services"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustRange(t *testing.T, in, out string) domain.DateRange {
	t.Helper()
	dr, err := domain.ParseDateRange(in, out)
	require.NoError(t, err)
	return dr
}

type bookingFixture struct {
	rooms  *mocks.RoomRepository
	store  *mocks.ReservationStore
	events *mocks.EventPublisher
	redis  redismock.ClientMock
	svc    *services.BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	rooms := mocks.NewRoomRepository(t)
	store := mocks.NewReservationStore(t)
	events := mocks.NewEventPublisher(t)
	db, mockRedis := redismock.NewClientMock()

	t.Cleanup(func() {
		if err := mockRedis.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unfulfilled redis expectations: %s", err)
		}
	})

	return &bookingFixture{
		rooms:  rooms,
		store:  store,
		events: events,
		redis:  mockRedis,
		svc:    services.NewBookingService(rooms, store, db, events, services.DefaultBookingConfig(), discardLogger()),
	}
}

func sampleRoom() *domain.Room {
	return &domain.Room{
		ID:       uuid.New(),
		Name:     "Sea View Deluxe",
		Price:    100,
		Type:     domain.RoomDeluxe,
		Capacity: 2,
	}
}

func calendarKey(roomID uuid.UUID) string {
	return fmt.Sprintf("rooms:%s:calendar", roomID)
}

func calendarVersionKey(roomID uuid.UUID) string {
	return fmt.Sprintf("rooms:%s:calendar:version", roomID)
}

func calendarPayload(t *testing.T, version int64, entries []services.CalendarEntry) []byte {
	t.Helper()
	raw, err := json.Marshal(struct {
		Version int64                    `json:"version"`
		Entries []services.CalendarEntry `json:"entries"`
	}{version, entries})
	require.NoError(t, err)
	return raw
}

func TestCreateBooking_Success(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	room := sampleRoom()
	userID := uuid.New()

	req := services.CreateBookingRequest{
		UserID:   userID.String(),
		RoomID:   room.ID.String(),
		CheckIn:  "2030-01-10",
		CheckOut: "2030-01-12",
		Guests:   2,
	}

	f.rooms.On("GetByID", ctx, room.ID).Return(room, nil)
	f.store.On("FindActiveByRoom", ctx, room.ID).Return([]domain.Reservation{}, nil)
	f.store.On("CreateIfAvailable", ctx, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.RoomID == room.ID &&
			r.UserID == userID &&
			r.Status == domain.ReservationConfirmed &&
			r.TotalAmount == 280
	})).Return(nil)
	f.events.On("Publish", ctx, mock.MatchedBy(func(ev domain.BookingEvent) bool {
		return ev.Type == domain.EventBookingConfirmed && ev.RoomName == room.Name && ev.CheckIn == "2030-01-10"
	})).Return(nil)
	f.redis.ExpectIncr(calendarVersionKey(room.ID)).SetVal(1)

	resp, err := f.svc.CreateBooking(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, 280.0, resp.TotalAmount)
	assert.Equal(t, 2, resp.Price.Nights)
	assert.Equal(t, 200.0, resp.Price.RoomTotal)
	assert.Equal(t, 50.0, resp.Price.CleaningFee)
	assert.Equal(t, 30.0, resp.Price.ServiceFee)
	assert.Equal(t, "confirmed", resp.Status)
	assert.NotEmpty(t, resp.BookingID)
}

func TestCreateBooking_CancelledReservationDoesNotBlock(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	room := sampleRoom()

	cancelled := domain.Reservation{
		ID:     uuid.New(),
		RoomID: room.ID,
		Range:  mustRange(t, "2030-01-09", "2030-01-13"),
		Status: domain.ReservationCancelled,
	}

	f.rooms.On("GetByID", ctx, room.ID).Return(room, nil)
	f.store.On("FindActiveByRoom", ctx, room.ID).Return([]domain.Reservation{cancelled}, nil)
	f.store.On("CreateIfAvailable", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)
	f.events.On("Publish", ctx, mock.AnythingOfType("domain.BookingEvent")).Return(nil)
	f.redis.ExpectIncr(calendarVersionKey(room.ID)).SetVal(1)

	_, err := f.svc.CreateBooking(ctx, services.CreateBookingRequest{
		UserID:   uuid.NewString(),
		RoomID:   room.ID.String(),
		CheckIn:  "2030-01-10",
		CheckOut: "2030-01-12",
		Guests:   1,
	})

	assert.NoError(t, err)
}

func TestCreateBooking_Fail_NotAvailable(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	room := sampleRoom()

	existing := domain.Reservation{
		ID:     uuid.New(),
		RoomID: room.ID,
		Range:  mustRange(t, "2030-01-11", "2030-01-14"),
		Status: domain.ReservationPending,
	}

	f.rooms.On("GetByID", ctx, room.ID).Return(room, nil)
	f.store.On("FindActiveByRoom", ctx, room.ID).Return([]domain.Reservation{existing}, nil)

	resp, err := f.svc.CreateBooking(ctx, services.CreateBookingRequest{
		UserID:   uuid.NewString(),
		RoomID:   room.ID.String(),
		CheckIn:  "2030-01-10",
		CheckOut: "2030-01-12",
		Guests:   1,
	})

	assert.ErrorIs(t, err, domain.ErrNotAvailable)
	assert.Nil(t, resp)
}

func TestCreateBooking_Fail_LostRace(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	room := sampleRoom()

	f.rooms.On("GetByID", ctx, room.ID).Return(room, nil)
	f.store.On("FindActiveByRoom", ctx, room.ID).Return(nil, nil)
	f.store.On("CreateIfAvailable", ctx, mock.Anything).Return(domain.ErrConflict)

	resp, err := f.svc.CreateBooking(ctx, services.CreateBookingRequest{
		UserID:   uuid.NewString(),
		RoomID:   room.ID.String(),
		CheckIn:  "2030-01-10",
		CheckOut: "2030-01-12",
		Guests:   1,
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Nil(t, resp)
}

func TestCreateBooking_Fail_StoreError(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	room := sampleRoom()

	f.rooms.On("GetByID", ctx, room.ID).Return(room, nil)
	f.store.On("FindActiveByRoom", ctx, room.ID).Return(nil, nil)
	f.store.On("CreateIfAvailable", ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := f.svc.CreateBooking(ctx, services.CreateBookingRequest{
		UserID:   uuid.NewString(),
		RoomID:   room.ID.String(),
		CheckIn:  "2030-01-10",
		CheckOut: "2030-01-12",
		Guests:   1,
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "create reservation")
}

func TestCreateBooking_PublishFailureDoesNotFailBooking(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	room := sampleRoom()

	f.rooms.On("GetByID", ctx, room.ID).Return(room, nil)
	f.store.On("FindActiveByRoom", ctx, room.ID).Return(nil, nil)
	f.store.On("CreateIfAvailable", ctx, mock.Anything).Return(nil)
	f.events.On("Publish", ctx, mock.Anything).Return(errors.New("broker down"))
	f.redis.ExpectIncr(calendarVersionKey(room.ID)).SetErr(errors.New("redis down"))

	resp, err := f.svc.CreateBooking(ctx, services.CreateBookingRequest{
		UserID:   uuid.NewString(),
		RoomID:   room.ID.String(),
		CheckIn:  "2030-01-10",
		CheckOut: "2030-01-12",
		Guests:   1,
	})

	require.NoError(t, err)
	assert.Equal(t, 280.0, resp.TotalAmount)
}

func TestCreateBooking_Fail_Validation(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	room := sampleRoom()

	tests := []struct {
		name string
		req  services.CreateBookingRequest
		want error
	}{
		{
			name: "missing room",
			req:  services.CreateBookingRequest{UserID: uuid.NewString(), CheckIn: "2030-01-10", CheckOut: "2030-01-12", Guests: 1},
			want: domain.ErrInvalidInput,
		},
		{
			name: "room id not a uuid",
			req:  services.CreateBookingRequest{UserID: uuid.NewString(), RoomID: "101", CheckIn: "2030-01-10", CheckOut: "2030-01-12", Guests: 1},
			want: domain.ErrInvalidInput,
		},
		{
			name: "zero guests",
			req:  services.CreateBookingRequest{UserID: uuid.NewString(), RoomID: room.ID.String(), CheckIn: "2030-01-10", CheckOut: "2030-01-12"},
			want: domain.ErrInvalidInput,
		},
		{
			name: "malformed date",
			req:  services.CreateBookingRequest{UserID: uuid.NewString(), RoomID: room.ID.String(), CheckIn: "10/01/2030", CheckOut: "2030-01-12", Guests: 1},
			want: domain.ErrInvalidDate,
		},
		{
			name: "check-out before check-in",
			req:  services.CreateBookingRequest{UserID: uuid.NewString(), RoomID: room.ID.String(), CheckIn: "2030-01-12", CheckOut: "2030-01-10", Guests: 1},
			want: domain.ErrInvalidRange,
		},
		{
			name: "nil room id",
			req:  services.CreateBookingRequest{UserID: uuid.NewString(), RoomID: uuid.Nil.String(), CheckIn: "2030-01-10", CheckOut: "2030-01-12", Guests: 1},
			want: domain.ErrInvalidRoomID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.svc.CreateBooking(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, resp)
		})
	}
}

func TestCreateBooking_Fail_RoomNotFound(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	roomID := uuid.New()

	f.rooms.On("GetByID", ctx, roomID).Return(nil, domain.ErrRoomNotFound)

	_, err := f.svc.CreateBooking(ctx, services.CreateBookingRequest{
		UserID:   uuid.NewString(),
		RoomID:   roomID.String(),
		CheckIn:  "2030-01-10",
		CheckOut: "2030-01-12",
		Guests:   1,
	})

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestCreateBooking_Fail_CapacityExceeded(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	room := sampleRoom()

	f.rooms.On("GetByID", ctx, room.ID).Return(room, nil)

	_, err := f.svc.CreateBooking(ctx, services.CreateBookingRequest{
		UserID:   uuid.NewString(),
		RoomID:   room.ID.String(),
		CheckIn:  "2030-01-10",
		CheckOut: "2030-01-12",
		Guests:   3,
	})

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestQuote(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	room := sampleRoom()
	dr := mustRange(t, "2030-01-10", "2030-01-13")

	f.rooms.On("GetByID", ctx, room.ID).Return(room, nil)
	f.store.On("FindActiveByRoom", ctx, room.ID).Return(nil, nil)

	q, err := f.svc.Quote(ctx, room.ID, dr)

	require.NoError(t, err)
	assert.True(t, q.Available)
	assert.Equal(t, 3, q.Price.Nights)
	assert.Equal(t, 380.0, q.Price.Total)
}

func TestRoomCalendar_CacheHit(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	roomID := uuid.New()

	cached := []services.CalendarEntry{{
		CheckIn:  time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2030, 1, 12, 0, 0, 0, 0, time.UTC),
		Status:   domain.ReservationConfirmed,
	}}

	f.redis.ExpectMGet(calendarKey(roomID), calendarVersionKey(roomID)).
		SetVal([]interface{}{string(calendarPayload(t, 4, cached)), "4"})

	entries, err := f.svc.RoomCalendar(ctx, roomID)

	require.NoError(t, err)
	assert.Equal(t, cached, entries)
}

func TestRoomCalendar_CacheMiss(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	room := sampleRoom()

	later := domain.Reservation{Range: mustRange(t, "2099-03-01", "2099-03-05"), Status: domain.ReservationPending}
	earlier := domain.Reservation{Range: mustRange(t, "2099-02-01", "2099-02-03"), Status: domain.ReservationConfirmed}
	past := domain.Reservation{Range: mustRange(t, "2000-01-01", "2000-01-03"), Status: domain.ReservationConfirmed}
	cancelled := domain.Reservation{Range: mustRange(t, "2099-04-01", "2099-04-03"), Status: domain.ReservationCancelled}

	want := []services.CalendarEntry{
		{CheckIn: earlier.Range.CheckIn, CheckOut: earlier.Range.CheckOut, Status: domain.ReservationConfirmed},
		{CheckIn: later.Range.CheckIn, CheckOut: later.Range.CheckOut, Status: domain.ReservationPending},
	}

	f.redis.ExpectMGet(calendarKey(room.ID), calendarVersionKey(room.ID)).SetVal([]interface{}{nil, nil})
	f.rooms.On("GetByID", ctx, room.ID).Return(room, nil)
	f.store.On("FindActiveByRoom", ctx, room.ID).Return([]domain.Reservation{later, past, cancelled, earlier}, nil)
	f.redis.ExpectSet(calendarKey(room.ID), calendarPayload(t, 0, want), time.Minute).SetVal("OK")

	entries, err := f.svc.RoomCalendar(ctx, room.ID)

	require.NoError(t, err)
	assert.Equal(t, want, entries)
}

func TestRoomCalendar_SnapshotOlderThanLastWriteIsIgnored(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	room := sampleRoom()

	// A reader stamped its snapshot with version 2, then a booking bumped it to 3.
	stale := []services.CalendarEntry{}
	fresh := domain.Reservation{Range: mustRange(t, "2099-02-01", "2099-02-03"), Status: domain.ReservationConfirmed}
	want := []services.CalendarEntry{{CheckIn: fresh.Range.CheckIn, CheckOut: fresh.Range.CheckOut, Status: domain.ReservationConfirmed}}

	f.redis.ExpectMGet(calendarKey(room.ID), calendarVersionKey(room.ID)).
		SetVal([]interface{}{string(calendarPayload(t, 2, stale)), "3"})
	f.rooms.On("GetByID", ctx, room.ID).Return(room, nil)
	f.store.On("FindActiveByRoom", ctx, room.ID).Return([]domain.Reservation{fresh}, nil)
	f.redis.ExpectSet(calendarKey(room.ID), calendarPayload(t, 3, want), time.Minute).SetVal("OK")

	entries, err := f.svc.RoomCalendar(ctx, room.ID)

	require.NoError(t, err)
	assert.Equal(t, want, entries)
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	room := sampleRoom()

	booking := func(status domain.ReservationStatus) *domain.Reservation {
		return &domain.Reservation{
			ID:     uuid.New(),
			RoomID: room.ID,
			UserID: owner,
			Range:  mustRange(t, "2030-01-10", "2030-01-12"),
			Status: status,
		}
	}

	t.Run("owner cancels", func(t *testing.T) {
		f := newBookingFixture(t)
		r := booking(domain.ReservationConfirmed)
		cancelled := *r
		cancelled.Status = domain.ReservationCancelled

		f.store.On("GetByID", ctx, r.ID).Return(r, nil)
		f.store.On("UpdateStatus", ctx, r.ID, domain.ReservationCancelled).Return(&cancelled, nil)
		f.rooms.On("GetByID", ctx, room.ID).Return(room, nil)
		f.events.On("Publish", ctx, mock.MatchedBy(func(ev domain.BookingEvent) bool {
			return ev.Type == domain.EventBookingCancelled && ev.Status == domain.ReservationCancelled
		})).Return(nil)
		f.redis.ExpectIncr(calendarVersionKey(room.ID)).SetVal(1)

		got, err := f.svc.CancelBooking(ctx, r.ID, owner)

		require.NoError(t, err)
		assert.Equal(t, domain.ReservationCancelled, got.Status)
	})

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		f := newBookingFixture(t)
		r := booking(domain.ReservationCancelled)

		f.store.On("GetByID", ctx, r.ID).Return(r, nil)

		got, err := f.svc.CancelBooking(ctx, r.ID, owner)

		require.NoError(t, err)
		assert.Equal(t, domain.ReservationCancelled, got.Status)
	})

	t.Run("someone else's booking", func(t *testing.T) {
		f := newBookingFixture(t)
		r := booking(domain.ReservationConfirmed)

		f.store.On("GetByID", ctx, r.ID).Return(r, nil)

		_, err := f.svc.CancelBooking(ctx, r.ID, uuid.New())

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(t)
		id := uuid.New()

		f.store.On("GetByID", ctx, id).Return(nil, domain.ErrReservationNotFound)

		_, err := f.svc.CancelBooking(ctx, id, owner)

		assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	})
}

func TestGetBooking_Visibility(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	r := &domain.Reservation{ID: uuid.New(), UserID: uuid.New()}

	f.store.On("GetByID", ctx, r.ID).Return(r, nil)

	got, err := f.svc.GetBooking(ctx, r.ID, r.UserID, false)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)

	_, err = f.svc.GetBooking(ctx, r.ID, uuid.New(), false)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.GetBooking(ctx, r.ID, uuid.Nil, true)
	assert.NoError(t, err)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	room := sampleRoom()

	t.Run("rejects archived", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.svc.UpdateStatus(ctx, uuid.New(), "archived")
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("rejects unknown", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.svc.UpdateStatus(ctx, uuid.New(), "checked_in")
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("reactivation conflict", func(t *testing.T) {
		f := newBookingFixture(t)
		id := uuid.New()
		f.store.On("UpdateStatus", ctx, id, domain.ReservationConfirmed).Return(nil, domain.ErrConflict)

		_, err := f.svc.UpdateStatus(ctx, id, "confirmed")
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("publishes status change", func(t *testing.T) {
		f := newBookingFixture(t)
		updated := &domain.Reservation{
			ID:     uuid.New(),
			RoomID: room.ID,
			Range:  mustRange(t, "2030-01-10", "2030-01-12"),
			Status: domain.ReservationPending,
		}

		f.store.On("UpdateStatus", ctx, updated.ID, domain.ReservationPending).Return(updated, nil)
		f.rooms.On("GetByID", ctx, room.ID).Return(room, nil)
		f.events.On("Publish", ctx, mock.MatchedBy(func(ev domain.BookingEvent) bool {
			return ev.Type == domain.EventBookingStatusChanged && ev.Status == domain.ReservationPending
		})).Return(nil)
		f.redis.ExpectIncr(calendarVersionKey(room.ID)).SetVal(1)

		got, err := f.svc.UpdateStatus(ctx, updated.ID, "pending")

		require.NoError(t, err)
		assert.Equal(t, domain.ReservationPending, got.Status)
	})
}

func TestListBookings_NormalizesPaging(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	f.store.On("List", ctx, domain.ReservationFilter{Limit: 20, Offset: 0}).Return([]domain.Reservation{}, 0, nil).Once()
	f.store.On("List", ctx, domain.ReservationFilter{Status: domain.ReservationPending, Limit: 50, Offset: 40}).Return([]domain.Reservation{}, 41, nil).Once()

	_, _, err := f.svc.ListBookings(ctx, domain.ReservationFilter{Limit: 0, Offset: -3})
	require.NoError(t, err)

	f.store.On("List", ctx, domain.ReservationFilter{Limit: 100, Offset: 0}).Return([]domain.Reservation{}, 150, nil).Once()
	_, _, err = f.svc.ListBookings(ctx, domain.ReservationFilter{Limit: 500})
	require.NoError(t, err)

	_, total, err := f.svc.ListBookings(ctx, domain.ReservationFilter{Status: domain.ReservationPending, Limit: 50, Offset: 40})
	require.NoError(t, err)
	assert.Equal(t, 41, total)

	_, _, err = f.svc.ListBookings(ctx, domain.ReservationFilter{Status: "bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestRoomBookings_UnknownRoom(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	roomID := uuid.New()

	f.rooms.On("GetByID", ctx, roomID).Return(nil, domain.ErrRoomNotFound)

	_, err := f.svc.RoomBookings(ctx, roomID, mustRange(t, "2030-01-01", "2030-02-01"))

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRunBackgroundCleanup(t *testing.T) {
	rooms := mocks.NewRoomRepository(t)
	store := mocks.NewReservationStore(t)

	cfg := services.DefaultBookingConfig()
	cfg.CleanupInterval = 5 * time.Millisecond
	cfg.PendingTTL = 30 * time.Minute

	svc := services.NewBookingService(rooms, store, nil, nil, cfg, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stale := &domain.Reservation{ID: uuid.New(), RoomID: uuid.New(), Status: domain.ReservationCancelled}

	store.On("CancelStalePending", mock.Anything, mock.MatchedBy(func(before time.Time) bool {
		return time.Since(before) >= 30*time.Minute
	})).Return([]uuid.UUID{stale.ID}, nil)
	store.On("GetByID", mock.Anything, stale.ID).Return(stale, nil).Run(func(mock.Arguments) { cancel() })

	done := make(chan struct{})
	go func() {
		svc.RunBackgroundCleanup(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup loop did not stop after context cancellation")
	}
}

func TestStats_FillsEveryDayOfTheWindow(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -29)
	yesterday := today.AddDate(0, 0, -1)

	f.store.On("Stats", ctx, since, 5).Return(domain.BookingStats{
		ConfirmedCount: 3,
		TotalRevenue:   840,
		StatusCounts:   map[domain.ReservationStatus]int{domain.ReservationConfirmed: 3, domain.ReservationCancelled: 1},
		RevenueByDay: []domain.DailyRevenue{
			{Day: since, Revenue: 280},
			{Day: yesterday, Revenue: 560},
		},
	}, nil)
	f.rooms.On("List", ctx, domain.RoomFilter{}).Return([]domain.Room{*sampleRoom(), *sampleRoom()}, nil)

	stats, err := f.svc.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.ConfirmedCount)
	assert.Equal(t, 840.0, stats.TotalRevenue)
	assert.Equal(t, 2, stats.TotalRooms)
	require.Len(t, stats.RevenueByDay, 30)
	assert.Equal(t, since, stats.RevenueByDay[0].Day)
	assert.Equal(t, 280.0, stats.RevenueByDay[0].Revenue)
	assert.Equal(t, 560.0, stats.RevenueByDay[28].Revenue)
	assert.Equal(t, today, stats.RevenueByDay[29].Day)
	assert.Zero(t, stats.RevenueByDay[29].Revenue)
}

func TestStats_StoreError(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	f.store.On("Stats", ctx, mock.Anything, 5).Return(domain.BookingStats{}, errors.New("timeout"))

	_, err := f.svc.Stats(ctx)

	assert.ErrorContains(t, err, "booking stats")
}
