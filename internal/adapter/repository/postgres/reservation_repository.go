package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
)

const reservationColumns = `id, room_id, user_id, check_in, check_out, guests, total_amount, status, created_at, updated_at`

type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (domain.Reservation, error) {
	var r domain.Reservation
	var status string

	err := row.Scan(
		&r.ID,
		&r.RoomID,
		&r.UserID,
		&r.Range.CheckIn,
		&r.Range.CheckOut,
		&r.Guests,
		&r.TotalAmount,
		&status,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return domain.Reservation{}, err
	}

	r.Status = domain.ReservationStatus(status)
	r.Range.CheckIn = r.Range.CheckIn.UTC()
	r.Range.CheckOut = r.Range.CheckOut.UTC()

	return r, nil
}

func (r *ReservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, res)
	}

	return out, rows.Err()
}

func (r *ReservationRepository) FindActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
	FROM reservations
	WHERE room_id = $1 AND status <> 'cancelled'
	`

	return r.queryReservations(ctx, query, roomID)
}

// CreateIfAvailable runs the overlap check and the insert in one SERIALIZABLE
// transaction. A writer that slips past the check is stopped by the
// exclusion constraint; both outcomes surface as domain.ErrConflict.
func (r *ReservationRepository) CreateIfAvailable(ctx context.Context, res *domain.Reservation) error {
	if err := res.Range.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}

	defer tx.Rollback()

	if res.Occupies() {
		taken, err := overlapExistsTx(ctx, tx, res.RoomID, res.ID, res.Range)
		if err != nil {
			return mapError(err)
		}

		if taken {
			return domain.ErrConflict
		}
	}

	queryInsert := `
	INSERT INTO reservations (id, room_id, user_id, check_in, check_out, guests, total_amount, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.ExecContext(ctx, queryInsert,
		res.ID, res.RoomID, res.UserID, res.Range.CheckIn, res.Range.CheckOut,
		res.Guests, res.TotalAmount, res.Status, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		if mapped := mapError(err); errors.Is(mapped, domain.ErrConflict) {
			return mapped
		}
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	if err := insertHistoryTx(ctx, tx, []uuid.UUID{res.ID}, res.Status, res.CreatedAt); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		if mapped := mapError(err); errors.Is(mapped, domain.ErrConflict) {
			return mapped
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func overlapExistsTx(ctx context.Context, tx *sql.Tx, roomID, self uuid.UUID, dr domain.DateRange) (bool, error) {
	query := `
	SELECT EXISTS (
		SELECT 1 FROM reservations
		WHERE room_id = $1
		  AND id <> $2
		  AND status <> 'cancelled'
		  AND check_in < $4
		  AND $3 < check_out
	)
	`

	var taken bool
	err := tx.QueryRowContext(ctx, query, roomID, self, dr.CheckIn, dr.CheckOut).Scan(&taken)

	return taken, err
}

func insertHistoryTx(ctx context.Context, tx *sql.Tx, ids []uuid.UUID, status domain.ReservationStatus, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO reservation_history (id, reservation_id, status, created_at)
	VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare history statement: %w", err)
	}

	defer stmt.Close()

	for _, id := range ids {
		if _, err := stmt.ExecContext(ctx, uuid.New(), id, status, at); err != nil {
			return fmt.Errorf("failed to insert history for reservation %s: %w", id, err)
		}
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}

		return nil, err
	}

	history, err := r.history(ctx, id)
	if err != nil {
		return nil, err
	}

	res.History = history
	return &res, nil
}

func (r *ReservationRepository) history(ctx context.Context, id uuid.UUID) ([]domain.StatusChange, error) {
	query := `
	SELECT id, reservation_id, status, created_at
	FROM reservation_history
	WHERE reservation_id = $1
	ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var out []domain.StatusChange
	for rows.Next() {
		var h domain.StatusChange
		var status string
		if err := rows.Scan(&h.ID, &h.ReservationID, &status, &h.CreatedAt); err != nil {
			return nil, err
		}

		h.Status = domain.ReservationStatus(status)
		out = append(out, h)
	}

	return out, rows.Err()
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
	FROM reservations
	WHERE user_id = $1
	ORDER BY created_at DESC
	`

	return r.queryReservations(ctx, query, userID)
}

func (r *ReservationRepository) List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations WHERE ($1::text = '' OR status = $1)`,
		string(filter.Status),
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	var limit any
	if filter.Limit > 0 {
		limit = filter.Limit
	}

	query := `SELECT ` + reservationColumns + `
	FROM reservations
	WHERE ($1::text = '' OR status = $1)
	ORDER BY created_at DESC
	LIMIT $2 OFFSET $3
	`

	out, err := r.queryReservations(ctx, query, string(filter.Status), limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *ReservationRepository) ListByRoomWithin(ctx context.Context, roomID uuid.UUID, window domain.DateRange) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
	FROM reservations
	WHERE room_id = $1 AND check_in >= $2 AND check_out <= $3
	ORDER BY check_in ASC
	`

	return r.queryReservations(ctx, query, roomID, window.CheckIn, window.CheckOut)
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}

	defer tx.Rollback()

	current, err := scanReservation(tx.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}

	if !current.Occupies() && status.Occupies() {
		taken, err := overlapExistsTx(ctx, tx, current.RoomID, current.ID, current.Range)
		if err != nil {
			return nil, mapError(err)
		}

		if taken {
			return nil, domain.ErrConflict
		}
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx, `UPDATE reservations SET status = $1, updated_at = $2 WHERE id = $3`, status, now, id)
	if err != nil {
		return nil, mapError(err)
	}

	if err := insertHistoryTx(ctx, tx, []uuid.UUID{id}, status, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, mapError(err)
	}

	return r.GetByID(ctx, id)
}

func (r *ReservationRepository) ArchiveByRoom(ctx context.Context, roomID uuid.UUID) (int64, error) {
	ids, err := r.transition(ctx,
		`UPDATE reservations SET status = 'archived', updated_at = $2
		WHERE room_id = $1 AND status = 'confirmed'
		RETURNING id`,
		domain.ReservationArchived, roomID,
	)

	return int64(len(ids)), err
}

// CancelStalePending measures staleness from updated_at: the time the row
// last changed status, not when it was booked.
func (r *ReservationRepository) CancelStalePending(ctx context.Context, pendingBefore time.Time) ([]uuid.UUID, error) {
	return r.transition(ctx,
		`UPDATE reservations SET status = 'cancelled', updated_at = $2
		WHERE status = 'pending' AND updated_at < $1
		RETURNING id`,
		domain.ReservationCancelled, pendingBefore,
	)
}

func (r *ReservationRepository) transition(ctx context.Context, query string, status domain.ReservationStatus, arg any) ([]uuid.UUID, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer tx.Rollback()

	now := time.Now().UTC()
	rows, err := tx.QueryContext(ctx, query, arg, now)
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}

		ids = append(ids, id)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := insertHistoryTx(ctx, tx, ids, status, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return ids, nil
}

func (r *ReservationRepository) Stats(ctx context.Context, since time.Time, recentLimit int) (domain.BookingStats, error) {
	stats := domain.BookingStats{StatusCounts: make(map[domain.ReservationStatus]int)}

	rows, err := r.db.QueryContext(ctx, `
	SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0)
	FROM reservations
	GROUP BY status
	`)
	if err != nil {
		return domain.BookingStats{}, err
	}

	for rows.Next() {
		var status string
		var count int
		var revenue float64
		if err := rows.Scan(&status, &count, &revenue); err != nil {
			rows.Close()
			return domain.BookingStats{}, err
		}

		stats.StatusCounts[domain.ReservationStatus(status)] = count
		if domain.ReservationStatus(status) == domain.ReservationConfirmed {
			stats.ConfirmedCount = count
			stats.TotalRevenue = revenue
		}
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return domain.BookingStats{}, err
	}

	recent, err := r.queryReservations(ctx, `SELECT `+reservationColumns+`
	FROM reservations
	WHERE status = 'confirmed'
	ORDER BY created_at DESC
	LIMIT $1
	`, recentLimit)
	if err != nil {
		return domain.BookingStats{}, err
	}
	stats.Recent = recent

	daily, err := r.db.QueryContext(ctx, `
	SELECT date_trunc('day', created_at AT TIME ZONE 'UTC') AS day, SUM(total_amount)
	FROM reservations
	WHERE status = 'confirmed' AND created_at >= $1
	GROUP BY day
	ORDER BY day
	`, since)
	if err != nil {
		return domain.BookingStats{}, err
	}

	defer daily.Close()

	for daily.Next() {
		var d domain.DailyRevenue
		if err := daily.Scan(&d.Day, &d.Revenue); err != nil {
			return domain.BookingStats{}, err
		}

		d.Day = time.Date(d.Day.Year(), d.Day.Month(), d.Day.Day(), 0, 0, 0, 0, time.UTC)
		stats.RevenueByDay = append(stats.RevenueByDay, d)
	}

	return stats, daily.Err()
}
