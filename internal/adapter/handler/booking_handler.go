package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/elbashmohands1/hotelseatower/internal/adapter/middleware"
	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
	"github.com/elbashmohands1/hotelseatower/internal/core/services"
)

type BookingHandler struct {
	svc *services.BookingService
	log *slog.Logger
}

func NewBookingHandler(svc *services.BookingService, log *slog.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, log: log}
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	id, err := middleware.IdentityFrom(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req services.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json body"})
	}
	req.UserID = id.UserID.String()

	resp, err := h.svc.CreateBooking(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	id, err := middleware.IdentityFrom(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	bookings, err := h.svc.ListUserBookings(c.Request().Context(), id.UserID)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, toReservationViews(bookings))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := middleware.IdentityFrom(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), bookingID, id.UserID, id.Admin)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, toReservationView(booking))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	id, err := middleware.IdentityFrom(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	booking, err := h.svc.CancelBooking(c.Request().Context(), bookingID, id.UserID)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, toReservationView(booking))
}

// CheckAvailability handles GET /v1/rooms/:id/availability?check_in=&check_out=.
func (h *BookingHandler) CheckAvailability(c echo.Context) error {
	roomID, dr, err := roomAndRange(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	available, err := h.svc.CheckAvailability(c.Request().Context(), roomID, dr)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"available": available})
}

// Quote handles GET /v1/rooms/:id/quote?check_in=&check_out=.
func (h *BookingHandler) Quote(c echo.Context) error {
	roomID, dr, err := roomAndRange(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	quote, err := h.svc.Quote(c.Request().Context(), roomID, dr)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, quote)
}

func (h *BookingHandler) RoomCalendar(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, h.log, domain.ErrInvalidRoomID)
	}

	entries, err := h.svc.RoomCalendar(c.Request().Context(), roomID)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, entries)
}

func roomAndRange(c echo.Context) (uuid.UUID, domain.DateRange, error) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domain.DateRange{}, domain.ErrInvalidRoomID
	}

	dr, err := domain.ParseDateRange(c.QueryParam("check_in"), c.QueryParam("check_out"))
	if err != nil {
		return uuid.Nil, domain.DateRange{}, err
	}

	return roomID, dr, nil
}
