package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
)

type ReviewStore struct {
	mu      sync.Mutex
	rooms   *RoomRepository
	reviews map[uuid.UUID][]domain.Review
}

// NewReviewStore writes rating aggregates back into rooms.
func NewReviewStore(rooms *RoomRepository) *ReviewStore {
	return &ReviewStore{
		rooms:   rooms,
		reviews: make(map[uuid.UUID][]domain.Review),
	}
}

func (s *ReviewStore) Create(_ context.Context, review *domain.Review) (domain.RoomRating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}

	all := append(append([]domain.Review(nil), s.reviews[review.RoomID]...), *review)
	rating := domain.AverageRating(all)

	if err := s.rooms.setRating(review.RoomID, rating); err != nil {
		return domain.RoomRating{}, err
	}

	s.reviews[review.RoomID] = all
	return rating, nil
}

func (s *ReviewStore) ListByRoom(_ context.Context, roomID uuid.UUID) ([]domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]domain.Review{}, s.reviews[roomID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}
