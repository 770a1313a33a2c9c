package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
	"github.com/elbashmohands1/hotelseatower/internal/core/services"
)

type AdminHandler struct {
	bookings *services.BookingService
	log      *slog.Logger
}

func NewAdminHandler(bookings *services.BookingService, log *slog.Logger) *AdminHandler {
	return &AdminHandler{bookings: bookings, log: log}
}

// ListBookings handles GET /v1/admin/bookings?status=&limit=&offset=.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	bookings, total, err := h.bookings.ListBookings(c.Request().Context(), filter)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": toReservationViews(bookings),
		"total": total,
	})
}

// GetBooking handles GET /v1/admin/bookings/:id and includes the status history.
func (h *AdminHandler) GetBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	booking, err := h.bookings.GetBooking(c.Request().Context(), id, uuid.Nil, true)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, toReservationView(booking))
}

func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json body"})
	}

	booking, err := h.bookings.UpdateStatus(c.Request().Context(), id, body.Status)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, toReservationView(booking))
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.bookings.Stats(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, toStatsView(stats))
}

// RoomBookings handles GET /v1/admin/rooms/:id/bookings?start=&end=.
func (h *AdminHandler) RoomBookings(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, h.log, domain.ErrInvalidRoomID)
	}

	if c.QueryParam("start") == "" || c.QueryParam("end") == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start and end dates are required"})
	}

	window, err := domain.ParseDateRange(c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return writeError(c, h.log, err)
	}

	bookings, err := h.bookings.RoomBookings(c.Request().Context(), roomID, window)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, toReservationViews(bookings))
}

// ExportBookings handles GET /v1/admin/bookings/export?status=.
func (h *AdminHandler) ExportBookings(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="bookings-`+time.Now().UTC().Format("2006-01-02")+`.csv"`)
	res.WriteHeader(http.StatusOK)

	if err := h.bookings.ExportBookings(c.Request().Context(), res, filter); err != nil {
		// Headers are already sent; all that is left is to log.
		h.log.Error("booking export aborted", "error", err)
	}

	return nil
}

func parseFilter(c echo.Context) (domain.ReservationFilter, error) {
	var filter domain.ReservationFilter

	if raw := c.QueryParam("status"); raw != "" {
		st, err := domain.ParseReservationStatus(raw)
		if err != nil {
			return filter, err
		}
		filter.Status = st
	}

	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		filter.Limit = n
	}

	if raw := c.QueryParam("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		filter.Offset = n
	}

	return filter, nil
}
