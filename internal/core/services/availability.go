package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
	"github.com/elbashmohands1/hotelseatower/internal/core/ports"
)

// AvailabilityChecker answers whether a room is free for a stay. It only reads.
type AvailabilityChecker struct {
	store ports.ReservationStore
}

func NewAvailabilityChecker(store ports.ReservationStore) *AvailabilityChecker {
	return &AvailabilityChecker{store: store}
}

func (c *AvailabilityChecker) CheckAvailability(ctx context.Context, roomID uuid.UUID, dr domain.DateRange) (bool, error) {
	if roomID == uuid.Nil {
		return false, domain.ErrInvalidRoomID
	}

	if err := dr.Validate(); err != nil {
		return false, err
	}

	existing, err := c.store.FindActiveByRoom(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("find reservations for room %s: %w", roomID, err)
	}

	return !HasConflict(existing, dr), nil
}

func HasConflict(existing []domain.Reservation, dr domain.DateRange) bool {
	for i := range existing {
		if existing[i].ConflictsWith(dr) {
			return true
		}
	}

	return false
}
