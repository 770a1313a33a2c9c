package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingEventType string

const (
	EventBookingConfirmed     BookingEventType = "booking.confirmed"
	EventBookingCancelled     BookingEventType = "booking.cancelled"
	EventBookingStatusChanged BookingEventType = "booking.status_changed"
)

// BookingEvent carries enough for a mailer to render its message without
// reading the database again.
type BookingEvent struct {
	Type          BookingEventType  `json:"type"`
	ReservationID uuid.UUID         `json:"reservation_id"`
	UserID        uuid.UUID         `json:"user_id"`
	RoomID        uuid.UUID         `json:"room_id"`
	RoomName      string            `json:"room_name"`
	CheckIn       string            `json:"check_in"`
	CheckOut      string            `json:"check_out"`
	Guests        int               `json:"guests"`
	TotalAmount   float64           `json:"total_amount"`
	Status        ReservationStatus `json:"status"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

func NewBookingEvent(t BookingEventType, r *Reservation, roomName string, at time.Time) BookingEvent {
	return BookingEvent{
		Type:          t,
		ReservationID: r.ID,
		UserID:        r.UserID,
		RoomID:        r.RoomID,
		RoomName:      roomName,
		CheckIn:       r.Range.CheckIn.Format(DateLayout),
		CheckOut:      r.Range.CheckOut.Format(DateLayout),
		Guests:        r.Guests,
		TotalAmount:   r.TotalAmount,
		Status:        r.Status,
		OccurredAt:    at.UTC(),
	}
}
