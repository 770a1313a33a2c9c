package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationArchived  ReservationStatus = "archived"
)

func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch st := ReservationStatus(s); st {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationArchived:
		return st, nil
	}

	return "", ErrInvalidStatus
}

// Occupies reports whether a reservation in this status holds the room.
// Only cancellation frees the calendar.
func (s ReservationStatus) Occupies() bool {
	return s != ReservationCancelled
}

// AdminSettable lists the statuses an administrator may assign directly.
func (s ReservationStatus) AdminSettable() bool {
	return s == ReservationPending || s == ReservationConfirmed || s == ReservationCancelled
}

type Reservation struct {
	ID          uuid.UUID
	RoomID      uuid.UUID
	UserID      uuid.UUID
	Range       DateRange
	Guests      int
	TotalAmount float64
	Status      ReservationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	History     []StatusChange
}

func (r *Reservation) Occupies() bool {
	return r.Status.Occupies()
}

func (r *Reservation) ConflictsWith(dr DateRange) bool {
	return r.Occupies() && r.Range.Overlaps(dr)
}

type StatusChange struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Status        ReservationStatus
	CreatedAt     time.Time
}

type ReservationFilter struct {
	Status ReservationStatus
	Limit  int
	Offset int
}
