package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order at startup. The reservations_no_overlap
// exclusion constraint is what finally rules out double-booking: two
// non-cancelled reservations of one room can never hold overlapping
// half-open ranges, whatever the isolation level of the writers.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL,
		price       NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		type        TEXT NOT NULL CHECK (type IN ('standard', 'deluxe', 'suite')),
		capacity    INT NOT NULL CHECK (capacity >= 1),
		images      TEXT[] NOT NULL DEFAULT '{}',
		amenities   TEXT[] NOT NULL DEFAULT '{}',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`ALTER TABLE rooms ADD COLUMN IF NOT EXISTS avg_rating NUMERIC(3,2) NOT NULL DEFAULT 0`,
	`ALTER TABLE rooms ADD COLUMN IF NOT EXISTS total_reviews INT NOT NULL DEFAULT 0`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id           UUID PRIMARY KEY,
		room_id      UUID NOT NULL,
		user_id      UUID NOT NULL,
		check_in     TIMESTAMPTZ NOT NULL,
		check_out    TIMESTAMPTZ NOT NULL,
		guests       INT NOT NULL CHECK (guests > 0),
		total_amount NUMERIC(12,2) NOT NULL,
		status       TEXT NOT NULL CHECK (status IN ('pending', 'confirmed', 'cancelled', 'archived')),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT reservations_range_check CHECK (check_in < check_out),
		CONSTRAINT reservations_no_overlap EXCLUDE USING gist (
			room_id WITH =,
			tstzrange(check_in, check_out, '[)') WITH &&
		) WHERE (status <> 'cancelled')
	)`,
	`CREATE INDEX IF NOT EXISTS reservations_user_idx ON reservations (user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS reservations_status_idx ON reservations (status, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS reservations_pending_idx ON reservations (updated_at) WHERE status = 'pending'`,
	`CREATE TABLE IF NOT EXISTS reservation_history (
		id             UUID PRIMARY KEY,
		reservation_id UUID NOT NULL REFERENCES reservations(id),
		status         TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS reservation_history_reservation_idx ON reservation_history (reservation_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id         UUID PRIMARY KEY,
		room_id    UUID NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
		user_id    UUID NOT NULL,
		booking_id UUID,
		rating     INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment    TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS reviews_room_idx ON reviews (room_id, created_at DESC)`,
}

func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}

	return nil
}
