package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
)

type historyView struct {
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type reservationView struct {
	ID          string        `json:"id"`
	RoomID      string        `json:"room_id"`
	UserID      string        `json:"user_id"`
	CheckIn     string        `json:"check_in"`
	CheckOut    string        `json:"check_out"`
	Guests      int           `json:"guests"`
	TotalAmount float64       `json:"total_amount"`
	Status      string        `json:"status"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
	History     []historyView `json:"history,omitempty"`
}

func toReservationView(r *domain.Reservation) reservationView {
	v := reservationView{
		ID:          r.ID.String(),
		RoomID:      r.RoomID.String(),
		UserID:      r.UserID.String(),
		CheckIn:     r.Range.CheckIn.Format(time.RFC3339),
		CheckOut:    r.Range.CheckOut.Format(time.RFC3339),
		Guests:      r.Guests,
		TotalAmount: r.TotalAmount,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.UTC().Format(time.RFC3339),
	}

	for _, h := range r.History {
		v.History = append(v.History, historyView{Status: string(h.Status), CreatedAt: h.CreatedAt.UTC().Format(time.RFC3339)})
	}

	return v
}

func toReservationViews(rs []domain.Reservation) []reservationView {
	out := make([]reservationView, 0, len(rs))
	for i := range rs {
		v := toReservationView(&rs[i])
		v.History = nil
		out = append(out, v)
	}
	return out
}

type roomView struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Type         string   `json:"type"`
	Capacity     int      `json:"capacity"`
	Images       []string `json:"images"`
	Amenities    []string `json:"amenities"`
	AvgRating    float64  `json:"avg_rating"`
	TotalReviews int      `json:"total_reviews"`
}

func toRoomView(r *domain.Room) roomView {
	return roomView{
		ID:           r.ID.String(),
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Type:         string(r.Type),
		Capacity:     r.Capacity,
		Images:       append([]string{}, r.Images...),
		Amenities:    append([]string{}, r.Amenities...),
		AvgRating:    r.AvgRating,
		TotalReviews: r.TotalReviews,
	}
}

type reviewView struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	UserID    string `json:"user_id"`
	BookingID string `json:"booking_id,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

func toReviewView(r *domain.Review) reviewView {
	v := reviewView{
		ID:        r.ID.String(),
		RoomID:    r.RoomID.String(),
		UserID:    r.UserID.String(),
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}

	if r.BookingID != uuid.Nil {
		v.BookingID = r.BookingID.String()
	}

	return v
}

type dailyRevenueView struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type statsView struct {
	ConfirmedBookings int                `json:"confirmed_bookings"`
	TotalRevenue      float64            `json:"total_revenue"`
	TotalRooms        int                `json:"total_rooms"`
	StatusCounts      map[string]int     `json:"status_counts"`
	RecentBookings    []reservationView  `json:"recent_bookings"`
	RevenueByDay      []dailyRevenueView `json:"revenue_by_day"`
}

func toStatsView(s domain.BookingStats) statsView {
	v := statsView{
		ConfirmedBookings: s.ConfirmedCount,
		TotalRevenue:      s.TotalRevenue,
		TotalRooms:        s.TotalRooms,
		StatusCounts:      make(map[string]int, 4),
		RecentBookings:    toReservationViews(s.Recent),
		RevenueByDay:      make([]dailyRevenueView, 0, len(s.RevenueByDay)),
	}

	for _, st := range []domain.ReservationStatus{domain.ReservationPending, domain.ReservationConfirmed, domain.ReservationCancelled, domain.ReservationArchived} {
		v.StatusCounts[string(st)] = s.StatusCounts[st]
	}

	for _, d := range s.RevenueByDay {
		v.RevenueByDay = append(v.RevenueByDay, dailyRevenueView{Date: d.Day.Format(domain.DateLayout), Revenue: d.Revenue})
	}

	return v
}
