package domain

import "errors"

var (
	ErrInvalidRange  = errors.New("invalid date range: check-in must be before check-out")
	ErrInvalidDate   = errors.New("invalid date format")
	ErrInvalidRoomID = errors.New("invalid room id")
	ErrInvalidRate   = errors.New("invalid nightly rate")
	ErrInvalidStatus = errors.New("invalid reservation status")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrNotAvailable is the normal "dates taken" outcome seen before any write.
	ErrNotAvailable = errors.New("room is not available for the selected dates")
	// ErrConflict means an overlapping reservation won the race at commit time.
	ErrConflict = errors.New("room no longer available: conflicting reservation")

	ErrCapacityExceeded    = errors.New("guests exceed room capacity")
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrForbidden           = errors.New("forbidden")
)
