package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/elbashmohands1/hotelseatower/internal/adapter/middleware"
	"github.com/elbashmohands1/hotelseatower/internal/core/services"
)

type Services struct {
	Bookings *services.BookingService
	Rooms    *services.RoomService
	Reviews  *services.ReviewService
}

// NewRouter builds the echo instance with every route registered.
func NewRouter(svc Services, jwtSecret string, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log))

	bookings := NewBookingHandler(svc.Bookings, log)
	rooms := NewRoomHandler(svc.Rooms, log)
	admin := NewAdminHandler(svc.Bookings, log)
	reviews := NewReviewHandler(svc.Reviews, log)

	e.GET("/healthz", Health)

	public := e.Group("/v1")
	public.GET("/rooms", rooms.ListRooms)
	public.GET("/rooms/:id", rooms.GetRoom)
	public.GET("/rooms/:id/availability", bookings.CheckAvailability)
	public.GET("/rooms/:id/quote", bookings.Quote)
	public.GET("/rooms/:id/bookings", bookings.RoomCalendar)
	public.GET("/rooms/:id/reviews", reviews.ListReviews)
	public.POST("/rooms/:id/reviews", reviews.SubmitReview, middleware.JWTAuth(jwtSecret))

	user := e.Group("/v1/bookings", middleware.JWTAuth(jwtSecret))
	user.POST("", bookings.CreateBooking)
	user.GET("", bookings.ListMyBookings)
	user.GET("/:id", bookings.GetBooking)
	user.PATCH("/:id/cancel", bookings.CancelBooking)

	adm := e.Group("/v1/admin", middleware.JWTAuth(jwtSecret), middleware.RequireAdmin())
	adm.GET("/stats", admin.Stats)
	adm.GET("/bookings", admin.ListBookings)
	adm.GET("/bookings/export", admin.ExportBookings)
	adm.GET("/bookings/:id", admin.GetBooking)
	adm.PATCH("/bookings/:id", admin.UpdateStatus)
	adm.GET("/rooms/:id/bookings", admin.RoomBookings)
	adm.POST("/rooms", rooms.CreateRoom)
	adm.PUT("/rooms/:id", rooms.UpdateRoom)
	adm.DELETE("/rooms/:id", rooms.DeleteRoom)

	return e
}
