package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
)

type RoomRepository struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]domain.Room
}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{rooms: make(map[uuid.UUID]domain.Room)}
}

func (r *RoomRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	c := copyRoom(room)
	return &c, nil
}

func (r *RoomRepository) List(_ context.Context, filter domain.RoomFilter) ([]domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if filter.Match(&room) {
			out = append(out, copyRoom(room))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *RoomRepository) Create(_ context.Context, room *domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	r.rooms[room.ID] = copyRoom(*room)

	return nil
}

func (r *RoomRepository) Update(_ context.Context, room *domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rooms[room.ID]
	if !ok {
		return domain.ErrRoomNotFound
	}

	updated := copyRoom(*room)
	updated.AvgRating = existing.AvgRating
	updated.TotalReviews = existing.TotalReviews
	r.rooms[room.ID] = updated

	return nil
}

func (r *RoomRepository) setRating(id uuid.UUID, rating domain.RoomRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[id]
	if !ok {
		return domain.ErrRoomNotFound
	}

	room.AvgRating = rating.Average
	room.TotalReviews = rating.Count
	r.rooms[id] = room

	return nil
}

func (r *RoomRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[id]; !ok {
		return domain.ErrRoomNotFound
	}
	delete(r.rooms, id)

	return nil
}

func copyRoom(room domain.Room) domain.Room {
	room.Images = append([]string(nil), room.Images...)
	room.Amenities = append([]string(nil), room.Amenities...)
	return room
}
