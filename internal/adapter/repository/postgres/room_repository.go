package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
)

const roomColumns = `id, name, description, price, type, capacity, images, amenities, avg_rating, total_reviews, created_at, updated_at`

type RoomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func scanRoom(row rowScanner) (domain.Room, error) {
	var room domain.Room
	var roomType string

	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Description,
		&room.Price,
		&roomType,
		&room.Capacity,
		pq.Array(&room.Images),
		pq.Array(&room.Amenities),
		&room.AvgRating,
		&room.TotalReviews,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	room.Type = domain.RoomType(roomType)
	return room, err
}

func (r *RoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}

		return nil, err
	}

	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + `
	FROM rooms
	WHERE ($1::text = '' OR type = $1)
	  AND ($2::int = 0 OR capacity >= $2)
	  AND ($3::numeric = 0 OR price <= $3)
	ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, string(filter.Type), filter.MinCapacity, filter.MaxPrice)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `
	INSERT INTO rooms (id, name, description, price, type, capacity, images, amenities, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		room.ID, room.Name, room.Description, room.Price, room.Type, room.Capacity,
		pq.Array(room.Images), pq.Array(room.Amenities), room.CreatedAt, room.UpdatedAt,
	)

	return err
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `
	UPDATE rooms
	SET name = $1,
		description = $2,
		price = $3,
		type = $4,
		capacity = $5,
		images = $6,
		amenities = $7,
		updated_at = $8
	WHERE id = $9
	`

	result, err := r.db.ExecContext(ctx, query,
		room.Name, room.Description, room.Price, room.Type, room.Capacity,
		pq.Array(room.Images), pq.Array(room.Amenities), room.UpdatedAt, room.ID,
	)
	if err != nil {
		return err
	}

	return expectOneRow(result)
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return expectOneRow(result)
}

func expectOneRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrRoomNotFound
	}

	return nil
}
