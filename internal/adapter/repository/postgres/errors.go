package postgres

import (
	"errors"

	"github.com/lib/pq"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
)

// mapError turns the SQLSTATEs raised by a lost overlap race into domain.ErrConflict.
// The only foreign key in the schema is reviews.room_id.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "exclusion_violation", "serialization_failure", "deadlock_detected":
			return domain.ErrConflict
		case "foreign_key_violation":
			return domain.ErrRoomNotFound
		}
	}

	return err
}
