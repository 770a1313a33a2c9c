package services

import (
	"math"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
)

const (
	DefaultCleaningFee = 50.0
	DefaultServiceFee  = 30.0
)

// FeeConfig holds the flat fees added once per booking.
type FeeConfig struct {
	CleaningFee float64
	ServiceFee  float64
}

func DefaultFeeConfig() FeeConfig {
	return FeeConfig{CleaningFee: DefaultCleaningFee, ServiceFee: DefaultServiceFee}
}

type PriceBreakdown struct {
	Nights      int     `json:"nights"`
	NightlyRate float64 `json:"nightly_rate"`
	RoomTotal   float64 `json:"room_total"`
	CleaningFee float64 `json:"cleaning_fee"`
	ServiceFee  float64 `json:"service_fee"`
	Total       float64 `json:"total"`
}

type PriceCalculator struct {
	fees FeeConfig
}

func NewPriceCalculator(fees FeeConfig) *PriceCalculator {
	return &PriceCalculator{fees: fees}
}

func (c *PriceCalculator) Quote(rate float64, dr domain.DateRange) (PriceBreakdown, error) {
	if err := dr.Validate(); err != nil {
		return PriceBreakdown{}, err
	}

	if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return PriceBreakdown{}, domain.ErrInvalidRate
	}

	nights := dr.Nights()
	roomTotal := roundCents(rate * float64(nights))

	return PriceBreakdown{
		Nights:      nights,
		NightlyRate: rate,
		RoomTotal:   roomTotal,
		CleaningFee: c.fees.CleaningFee,
		ServiceFee:  c.fees.ServiceFee,
		Total:       roundCents(roomTotal + c.fees.CleaningFee + c.fees.ServiceFee),
	}, nil
}

func (c *PriceCalculator) CalculatePrice(rate float64, dr domain.DateRange) (float64, error) {
	q, err := c.Quote(rate, dr)
	if err != nil {
		return 0, err
	}

	return q.Total, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
