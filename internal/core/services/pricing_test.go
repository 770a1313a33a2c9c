package services_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
	"github.com/elbashmohands1/hotelseatower/internal/core/services"
)

func TestCalculatePrice(t *testing.T) {
	calc := services.NewPriceCalculator(services.DefaultFeeConfig())

	tests := []struct {
		name string
		rate float64
		in   string
		out  string
		want float64
	}{
		{"two nights", 100, "2025-01-10", "2025-01-12", 280},
		{"three nights", 100, "2024-06-01", "2024-06-04", 380},
		{"one night", 120, "2025-01-10", "2025-01-11", 200},
		{"week", 89.99, "2025-03-01", "2025-03-08", 709.93},
		{"free room still pays fees", 0, "2025-01-10", "2025-01-11", 80},
		{"same day bills one night", 100, "2025-01-10T10:00:00Z", "2025-01-10T20:00:00Z", 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.CalculatePrice(tt.rate, mustRange(t, tt.in, tt.out))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculatePrice_CustomFees(t *testing.T) {
	calc := services.NewPriceCalculator(services.FeeConfig{CleaningFee: 25, ServiceFee: 0})

	q, err := calc.Quote(150, mustRange(t, "2025-01-10", "2025-01-13"))

	require.NoError(t, err)
	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, 450.0, q.RoomTotal)
	assert.Equal(t, 475.0, q.Total)
}

func TestCalculatePrice_InvalidInput(t *testing.T) {
	calc := services.NewPriceCalculator(services.DefaultFeeConfig())
	dr := mustRange(t, "2025-01-10", "2025-01-12")

	for _, rate := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := calc.CalculatePrice(rate, dr)
		assert.ErrorIs(t, err, domain.ErrInvalidRate)
	}

	_, err := calc.CalculatePrice(100, domain.DateRange{})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}
