package notify

import (
	"context"
	"log/slog"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
)

// LogPublisher stands in for the broker when RABBITMQ_URL is unset.
type LogPublisher struct {
	log *slog.Logger
}

func NewLogPublisher(log *slog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, event domain.BookingEvent) error {
	p.log.Info("booking event",
		"type", event.Type,
		"reservation_id", event.ReservationID,
		"user_id", event.UserID,
		"room", event.RoomName,
		"check_in", event.CheckIn,
		"check_out", event.CheckOut,
		"status", event.Status,
	)
	return nil
}
