package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
)

type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts the review and refreshes rooms.avg_rating/total_reviews in
// the same transaction. The room row is locked first so that each
// aggregate is computed after the previous reviewer committed.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (domain.RoomRating, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.RoomRating{}, err
	}

	defer tx.Rollback()

	var locked uuid.UUID
	err = tx.QueryRowContext(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, review.RoomID).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RoomRating{}, domain.ErrRoomNotFound
		}
		return domain.RoomRating{}, err
	}

	var bookingID uuid.NullUUID
	if review.BookingID != uuid.Nil {
		bookingID = uuid.NullUUID{UUID: review.BookingID, Valid: true}
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO reviews (id, room_id, user_id, booking_id, rating, comment, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, review.ID, review.RoomID, review.UserID, bookingID, review.Rating, review.Comment, review.CreatedAt)
	if err != nil {
		return domain.RoomRating{}, mapError(err)
	}

	var rating domain.RoomRating
	err = tx.QueryRowContext(ctx, `
	UPDATE rooms
	SET avg_rating = agg.avg_rating, total_reviews = agg.total_reviews
	FROM (
		SELECT ROUND(COALESCE(AVG(rating), 0), 2) AS avg_rating, COUNT(*) AS total_reviews
		FROM reviews
		WHERE room_id = $1
	) AS agg
	WHERE rooms.id = $1
	RETURNING rooms.avg_rating, rooms.total_reviews
	`, review.RoomID).Scan(&rating.Average, &rating.Count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RoomRating{}, domain.ErrRoomNotFound
		}
		return domain.RoomRating{}, fmt.Errorf("failed to refresh room rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.RoomRating{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return rating, nil
}

func (r *ReviewRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, room_id, user_id, booking_id, rating, comment, created_at
	FROM reviews
	WHERE room_id = $1
	ORDER BY created_at DESC
	`, roomID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		var bookingID uuid.NullUUID
		if err := rows.Scan(&rv.ID, &rv.RoomID, &rv.UserID, &bookingID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}

		if bookingID.Valid {
			rv.BookingID = bookingID.UUID
		}
		reviews = append(reviews, rv)
	}

	return reviews, rows.Err()
}
