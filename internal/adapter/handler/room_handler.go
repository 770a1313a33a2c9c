package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/elbashmohands1/hotelseatower/internal/core/domain"
	"github.com/elbashmohands1/hotelseatower/internal/core/services"
)

type RoomHandler struct {
	svc *services.RoomService
	log *slog.Logger
}

func NewRoomHandler(svc *services.RoomService, log *slog.Logger) *RoomHandler {
	return &RoomHandler{svc: svc, log: log}
}

// ListRooms handles GET /v1/rooms?type=&min_capacity=&max_price=.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	filter := domain.RoomFilter{Type: domain.RoomType(c.QueryParam("type"))}

	if raw := c.QueryParam("min_capacity"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid min_capacity"})
		}
		filter.MinCapacity = n
	}

	if raw := c.QueryParam("max_price"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid max_price"})
		}
		filter.MaxPrice = f
	}

	rooms, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return writeError(c, h.log, err)
	}

	out := make([]roomView, 0, len(rooms))
	for i := range rooms {
		out = append(out, toRoomView(&rooms[i]))
	}

	return c.JSON(http.StatusOK, out)
}

func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, h.log, domain.ErrInvalidRoomID)
	}

	room, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, toRoomView(room))
}

func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var in services.RoomInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json body"})
	}

	room, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, toRoomView(room))
}

func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, h.log, domain.ErrInvalidRoomID)
	}

	var in services.RoomInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json body"})
	}

	room, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, toRoomView(room))
}

func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, h.log, domain.ErrInvalidRoomID)
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
