package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
	"github.com/elbashmohands1/hotelseatower/internal/core/ports"
)

type ReviewInput struct {
	UserID    string `json:"-" validate:"required,uuid"`
	RoomID    string `json:"-" validate:"required,uuid"`
	BookingID string `json:"booking_id" validate:"omitempty,uuid"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment" validate:"max=2000"`
}

type ReviewService struct {
	rooms    ports.RoomRepository
	reviews  ports.ReviewStore
	store    ports.ReservationStore
	validate *validator.Validate
	log      *slog.Logger
	now      func() time.Time
}

func NewReviewService(rooms ports.RoomRepository, reviews ports.ReviewStore, store ports.ReservationStore, log *slog.Logger) *ReviewService {
	if log == nil {
		log = slog.Default()
	}

	return &ReviewService{
		rooms:    rooms,
		reviews:  reviews,
		store:    store,
		validate: newValidator(),
		log:      log,
		now:      time.Now,
	}
}

// Submit stores a review. A referenced booking must belong to the reviewer
// and be for the same room.
func (s *ReviewService) Submit(ctx context.Context, in ReviewInput) (*domain.Review, domain.RoomRating, error) {
	if !domain.ValidRating(in.Rating) {
		return nil, domain.RoomRating{}, domain.ErrInvalidRating
	}

	if err := s.validate.Struct(in); err != nil {
		return nil, domain.RoomRating{}, invalidInput(err)
	}

	review := &domain.Review{
		ID:        uuid.New(),
		RoomID:    uuid.MustParse(in.RoomID),
		UserID:    uuid.MustParse(in.UserID),
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
		CreatedAt: s.now().UTC(),
	}

	if _, err := s.rooms.GetByID(ctx, review.RoomID); err != nil {
		return nil, domain.RoomRating{}, err
	}

	if in.BookingID != "" {
		review.BookingID = uuid.MustParse(in.BookingID)
		if err := s.checkBooking(ctx, review); err != nil {
			return nil, domain.RoomRating{}, err
		}
	}

	rating, err := s.reviews.Create(ctx, review)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil, domain.RoomRating{}, err
		}
		s.log.Error("failed to store review", "room_id", review.RoomID, "error", err)
		return nil, domain.RoomRating{}, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("review submitted",
		"review_id", review.ID,
		"room_id", review.RoomID,
		"user_id", review.UserID,
		"rating", review.Rating,
		"avg_rating", rating.Average,
	)

	return review, rating, nil
}

func (s *ReviewService) checkBooking(ctx context.Context, review *domain.Review) error {
	booking, err := s.store.GetByID(ctx, review.BookingID)
	if err != nil {
		return err
	}

	if booking.UserID != review.UserID {
		return domain.ErrForbidden
	}

	if booking.RoomID != review.RoomID {
		return fmt.Errorf("%w: booking is for another room", domain.ErrInvalidInput)
	}

	return nil
}

// List returns the room's reviews, newest first.
func (s *ReviewService) List(ctx context.Context, roomID uuid.UUID) ([]domain.Review, error) {
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		return nil, err
	}

	return s.reviews.ListByRoom(ctx, roomID)
}
