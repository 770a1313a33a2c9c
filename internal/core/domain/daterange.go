package domain

import (
	"math"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange is a half-open stay interval [CheckIn, CheckOut).
// Build it with NewDateRange or ParseDateRange so CheckIn < CheckOut holds.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	if !checkIn.Before(checkOut) {
		return DateRange{}, ErrInvalidRange
	}

	return DateRange{CheckIn: checkIn.UTC(), CheckOut: checkOut.UTC()}, nil
}

// ParseDateRange accepts plain calendar dates (2006-01-02) or RFC3339 timestamps.
func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := parseDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}

	out, err := parseDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}

	return NewDateRange(in, out)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidDate
	}

	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return t, nil
}

func (r DateRange) Validate() error {
	if !r.CheckIn.Before(r.CheckOut) {
		return ErrInvalidRange
	}

	return nil
}

func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Contains reports whether r lies entirely inside window.
func (r DateRange) Contains(window DateRange) bool {
	return !window.CheckIn.After(r.CheckIn) && !r.CheckOut.After(window.CheckOut)
}

// Nights rounds partial days up and never returns less than one.
func (r DateRange) Nights() int {
	days := r.CheckOut.Sub(r.CheckIn).Hours() / 24
	nights := int(math.Ceil(days))
	if nights < 1 {
		return 1
	}

	return nights
}

func (r DateRange) String() string {
	return r.CheckIn.Format(DateLayout) + "/" + r.CheckOut.Format(DateLayout)
}
