package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
)

var exportHeader = []string{"id", "room_id", "user_id", "check_in", "check_out", "guests", "total_amount", "status", "created_at"}

const exportPageSize = 100

// ExportBookings streams every reservation matching filter as CSV, paging through the store.
func (s *BookingService) ExportBookings(ctx context.Context, w io.Writer, filter domain.ReservationFilter) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	filter.Limit = exportPageSize
	filter.Offset = 0
	for {
		page, total, err := s.store.List(ctx, filter)
		if err != nil {
			return fmt.Errorf("list reservations for export: %w", err)
		}

		for _, r := range page {
			if err := cw.Write(exportRow(r)); err != nil {
				return err
			}
		}

		filter.Offset += len(page)
		if len(page) == 0 || filter.Offset >= total {
			break
		}
	}

	cw.Flush()
	return cw.Error()
}

func exportRow(r domain.Reservation) []string {
	return []string{
		r.ID.String(),
		r.RoomID.String(),
		r.UserID.String(),
		r.Range.CheckIn.Format("2006-01-02"),
		r.Range.CheckOut.Format("2006-01-02"),
		strconv.Itoa(r.Guests),
		strconv.FormatFloat(r.TotalAmount, 'f', 2, 64),
		string(r.Status),
		r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
