package domain

import "time"

type DailyRevenue struct {
	Day     time.Time
	Revenue float64
}

type BookingStats struct {
	ConfirmedCount int
	TotalRevenue   float64 // confirmed only
	StatusCounts   map[ReservationStatus]int
	Recent         []Reservation
	RevenueByDay   []DailyRevenue
	TotalRooms     int
}
