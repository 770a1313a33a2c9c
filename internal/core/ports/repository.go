package ports

//go:generate mockery --all --output mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
)

type ReservationStore interface {
	// FindActiveByRoom returns every non-cancelled reservation of the room, in no particular order.
	FindActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.Reservation, error)
	// CreateIfAvailable re-checks for overlap and inserts as one atomic unit.
	// It returns domain.ErrConflict when an occupying reservation overlaps.
	CreateIfAvailable(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, int, error)
	ListByRoomWithin(ctx context.Context, roomID uuid.UUID, window domain.DateRange) ([]domain.Reservation, error)
	// UpdateStatus writes the status and a history row together. Moving a
	// cancelled reservation back to an occupying status is overlap-guarded.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) (*domain.Reservation, error)
	ArchiveByRoom(ctx context.Context, roomID uuid.UUID) (int64, error)
	// CancelStalePending cancels reservations that have sat in pending since before pendingBefore.
	CancelStalePending(ctx context.Context, pendingBefore time.Time) ([]uuid.UUID, error)
	// Stats aggregates the whole table. Daily revenue starts at since and
	// recent holds at most recentLimit confirmed reservations, newest first.
	Stats(ctx context.Context, since time.Time, recentLimit int) (domain.BookingStats, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReviewStore interface {
	// Create stores the review and recomputes the room's rating in one unit.
	Create(ctx context.Context, review *domain.Review) (domain.RoomRating, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.Review, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}
