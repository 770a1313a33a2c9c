package domain

import (
	"time"

	"github.com/google/uuid"
)

type RoomType string

const (
	RoomStandard RoomType = "standard"
	RoomDeluxe   RoomType = "deluxe"
	RoomSuite    RoomType = "suite"
)

// Room is read-only to the booking logic; callers pass it in as a snapshot.
type Room struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Type        RoomType
	Capacity    int
	Images      []string
	Amenities   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// AvgRating and TotalReviews are maintained by the review store.
	AvgRating    float64
	TotalReviews int
}

func (r *Room) Fits(guests int) bool {
	return guests > 0 && guests <= r.Capacity
}

type RoomFilter struct {
	Type        RoomType
	MinCapacity int
	MaxPrice    float64
}

func (f RoomFilter) Match(r *Room) bool {
	if f.Type != "" && r.Type != f.Type {
		return false
	}

	if f.MinCapacity > 0 && r.Capacity < f.MinCapacity {
		return false
	}

	if f.MaxPrice > 0 && r.Price > f.MaxPrice {
		return false
	}

	return true
}
