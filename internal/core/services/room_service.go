package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
	"github.com/elbashmohands1/hotelseatower/internal/core/ports"
)

// RoomInput mirrors the admin room form.
type RoomInput struct {
	Name        string   `json:"name" validate:"required,min=3"`
	Description string   `json:"description" validate:"required,min=10"`
	Price       float64  `json:"price" validate:"gte=0"`
	Type        string   `json:"type" validate:"required,oneof=standard deluxe suite"`
	Capacity    int      `json:"capacity" validate:"required,min=1"`
	Images      []string `json:"images" validate:"required,min=1,dive,url"`
	Amenities   []string `json:"amenities" validate:"required,min=1,dive,required"`
}

type RoomService struct {
	rooms    ports.RoomRepository
	store    ports.ReservationStore
	calendar *calendarCache
	validate *validator.Validate
	log      *slog.Logger
	now      func() time.Time
}

func NewRoomService(rooms ports.RoomRepository, store ports.ReservationStore, cache *redis.Client, log *slog.Logger) *RoomService {
	if log == nil {
		log = slog.Default()
	}

	return &RoomService{
		rooms:    rooms,
		store:    store,
		calendar: &calendarCache{client: cache, log: log},
		validate: newValidator(),
		log:      log,
		now:      time.Now,
	}
}

func (s *RoomService) List(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error) {
	return s.rooms.List(ctx, filter)
}

func (s *RoomService) Get(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *RoomService) Create(ctx context.Context, in RoomInput) (*domain.Room, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, invalidInput(err)
	}

	now := s.now().UTC()
	room := &domain.Room{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	apply(room, in)

	if err := s.rooms.Create(ctx, room); err != nil {
		s.log.Error("failed to create room", "error", err)
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("room created", "room_id", room.ID, "name", room.Name)
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, id uuid.UUID, in RoomInput) (*domain.Room, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, invalidInput(err)
	}

	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(room, in)
	room.UpdatedAt = s.now().UTC()

	if err := s.rooms.Update(ctx, room); err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil, err
		}
		s.log.Error("failed to update room", "room_id", id, "error", err)
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.log.Info("room updated", "room_id", id)
	return room, nil
}

// Delete archives the room's confirmed reservations before removing it.
func (s *RoomService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.rooms.GetByID(ctx, id); err != nil {
		return err
	}

	archived, err := s.store.ArchiveByRoom(ctx, id)
	if err != nil {
		s.log.Error("failed to archive room reservations", "room_id", id, "error", err)
		return fmt.Errorf("archive reservations: %w", err)
	}

	// Not atomic with the archive above: a booking committed in between stays
	// confirmed on the deleted room until an admin cancels it.
	if err := s.rooms.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete room", "room_id", id, "error", err)
		return fmt.Errorf("delete room: %w", err)
	}

	s.calendar.invalidate(ctx, id)
	s.log.Info("room deleted", "room_id", id, "archived_reservations", archived)
	return nil
}

func apply(room *domain.Room, in RoomInput) {
	room.Name = in.Name
	room.Description = in.Description
	room.Price = in.Price
	room.Type = domain.RoomType(in.Type)
	room.Capacity = in.Capacity
	room.Images = append([]string(nil), in.Images...)
	room.Amenities = append([]string(nil), in.Amenities...)
}
