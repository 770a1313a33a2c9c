package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/elbashmohands1/hotelseatower/internal/adapter/handler"
	"github.com/elbashmohands1/hotelseatower/internal/adapter/notify"
	"github.com/elbashmohands1/hotelseatower/internal/adapter/repository/memory"
	"github.com/elbashmohands1/hotelseatower/internal/adapter/repository/postgres"
	"github.com/elbashmohands1/hotelseatower/internal/core/ports"
	"github.com/elbashmohands1/hotelseatower/internal/core/services"
	"github.com/elbashmohands1/hotelseatower/internal/platform/cache"
	"github.com/elbashmohands1/hotelseatower/internal/platform/config"
	"github.com/elbashmohands1/hotelseatower/internal/platform/database"
	"github.com/elbashmohands1/hotelseatower/internal/platform/logger"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}

	log.Info("server exiting")
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		rooms   ports.RoomRepository
		store   ports.ReservationStore
		reviews ports.ReviewStore
	)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		log.Warn("using in-memory store, data is lost on restart")
		memRooms := memory.NewRoomRepository()
		rooms = memRooms
		store = memory.NewReservationStore()
		reviews = memory.NewReviewStore(memRooms)
	default:
		db, err := database.NewPostgresDB(ctx, database.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		}, log)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}

		rooms = postgres.NewRoomRepository(db)
		store = postgres.NewReservationRepository(db)
		reviews = postgres.NewReviewRepository(db)
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = cache.NewRedisClient(ctx, cache.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, log)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var events ports.EventPublisher = notify.NewLogPublisher(log)
	if cfg.RabbitMQURL != "" {
		publisher, err := notify.NewPublisher(cfg.RabbitMQURL, cfg.EventExchange, log)
		if err != nil {
			log.Warn("rabbitmq unavailable, booking events go to the log", "error", err)
		} else {
			defer publisher.Close()
			events = publisher
		}
	}

	bookingService := services.NewBookingService(rooms, store, redisClient, events, services.BookingConfig{
		Fees: services.FeeConfig{
			CleaningFee: cfg.CleaningFee,
			ServiceFee:  cfg.ServiceFee,
		},
		CalendarTTL:     cfg.CalendarTTL,
		PendingTTL:      cfg.PendingTTL,
		CleanupInterval: cfg.CleanupInterval,
	}, log)
	roomService := services.NewRoomService(rooms, store, redisClient, log)
	reviewService := services.NewReviewService(rooms, reviews, store, log)

	go bookingService.RunBackgroundCleanup(ctx)

	e := handler.NewRouter(handler.Services{
		Bookings: bookingService,
		Rooms:    roomService,
		Reviews:  reviewService,
	}, cfg.JWTSecret, log)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      e,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", cfg.HTTPAddr, "env", cfg.Env, "store", cfg.StoreDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
