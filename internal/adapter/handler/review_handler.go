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

type ReviewHandler struct {
	svc *services.ReviewService
	log *slog.Logger
}

func NewReviewHandler(svc *services.ReviewService, log *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: log}
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, h.log, domain.ErrInvalidRoomID)
	}

	reviews, err := h.svc.List(c.Request().Context(), roomID)
	if err != nil {
		return writeError(c, h.log, err)
	}

	out := make([]reviewView, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewView(&reviews[i]))
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	id, err := middleware.IdentityFrom(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	if _, err := uuid.Parse(c.Param("id")); err != nil {
		return writeError(c, h.log, domain.ErrInvalidRoomID)
	}

	var in services.ReviewInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json body"})
	}
	in.UserID = id.UserID.String()
	in.RoomID = c.Param("id")

	review, rating, err := h.svc.Submit(c.Request().Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"review":        toReviewView(review),
		"avg_rating":    rating.Average,
		"total_reviews": rating.Count,
	})
}
