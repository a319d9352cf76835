package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/duchauuuuu/flight-backend/api"
	"github.com/duchauuuuu/flight-backend/config"
	"github.com/duchauuuuu/flight-backend/internal/bootstrap"
	"github.com/duchauuuuu/flight-backend/internal/cache"
	"github.com/duchauuuuu/flight-backend/internal/inventory"
	"github.com/duchauuuuu/flight-backend/internal/kafka"
	"github.com/duchauuuuu/flight-backend/internal/repository"
	"github.com/duchauuuuu/flight-backend/internal/service/booking"
	"github.com/duchauuuuu/flight-backend/internal/service/loyalty"
	"github.com/duchauuuuu/flight-backend/internal/service/notifications"
	"github.com/duchauuuuu/flight-backend/internal/service/search"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis,
		time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second,
		time.Duration(cfg.Booking.SearchCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)

	seatInventory := inventory.New(flightRepo)
	searchService := search.NewSearchService(flightRepo, redisCache, logger)
	loyaltyService := loyalty.NewLoyaltyService(userRepo)
	notificationService := notifications.NewNotificationService(notificationRepo)
	bookingService := booking.NewBookingService(
		bookingRepo,
		flightRepo,
		notificationRepo,
		loyaltyService,
		seatInventory,
		logger,
		booking.WithProducer(producer, cfg.Kafka.BookingEventsTopic, cfg.Kafka.NotificationsTopic),
	)

	handlers := bootstrap.Handlers{
		Flights:       api.NewFlightHandler(searchService),
		Bookings:      api.NewBookingHandler(bookingService),
		Notifications: api.NewNotificationHandler(notificationService),
		Loyalty:       api.NewLoyaltyHandler(loyaltyService),
	}

	if err := bootstrap.Run(ctx, cfg, logger, handlers); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}
