package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID     uuid.UUID
	RoomID uuid.UUID
	UserID uuid.UUID
	// BookingID is uuid.Nil when the review is not tied to a stay.
	BookingID uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// RoomRating is the aggregate stored on the room after every review.
type RoomRating struct {
	Average float64
	Count   int
}

func AverageRating(reviews []Review) RoomRating {
	if len(reviews) == 0 {
		return RoomRating{}
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	avg := float64(sum) / float64(len(reviews))
	return RoomRating{Average: math.Round(avg*100) / 100, Count: len(reviews)}
}
