package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/alkawthar/api"
	"github.com/Domenick1991/alkawthar/config"
	"github.com/Domenick1991/alkawthar/internal/auth"
	"github.com/Domenick1991/alkawthar/internal/bootstrap"
	"github.com/Domenick1991/alkawthar/internal/cache"
	"github.com/Domenick1991/alkawthar/internal/i18n"
	"github.com/Domenick1991/alkawthar/internal/kafka"
	"github.com/Domenick1991/alkawthar/internal/logger"
	"github.com/Domenick1991/alkawthar/internal/repository"
	authsvc "github.com/Domenick1991/alkawthar/internal/service/auth"
	"github.com/Domenick1991/alkawthar/internal/service/booking"
	"github.com/Domenick1991/alkawthar/internal/service/dashboard"
	"github.com/Domenick1991/alkawthar/internal/service/flights"
	"github.com/Domenick1991/alkawthar/internal/service/passengers"
	"github.com/Domenick1991/alkawthar/internal/service/reference"
	"github.com/Domenick1991/alkawthar/internal/storage"
	"github.com/Domenick1991/alkawthar/internal/ticketqr"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if err := logger.Setup(cfg.Log); err != nil {
		logrus.Fatalf("setup logger: %v", err)
	}
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := storage.CreateSchema(ctx, db); err != nil {
		logrus.Fatalf("create schema: %v", err)
	}
	if cfg.Database.Seed {
		if err := storage.Seed(ctx, db); err != nil {
			logrus.Fatalf("seed demo data: %v", err)
		}
	}

	checks := map[string]bootstrap.HealthCheck{"database": db.PingContext}

	// Redis and Kafka are optional; the API runs without seat locks,
	// option caching and events when they are not configured.
	var (
		seatLocks booking.Cache
		options   reference.OptionCache
		stale     flights.OptionInvalidator
		events    booking.Producer
	)
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.ReferenceCacheTTL)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("redis unavailable, continuing without cache")
		} else {
			seatLocks, options, stale = redisCache, redisCache, redisCache
			checks["redis"] = redisCache.Ping
		}
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			logrus.WithError(err).Warn("kafka unavailable, events disabled")
		} else {
			events = producer
			checks["kafka"] = producer.CheckConnection
		}
	}

	flightRepo := repository.NewFlightRepository(db)
	passengerRepo := repository.NewPassengerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	referenceRepo := repository.NewReferenceRepository(db)
	userRepo := repository.NewUserRepository(db)

	pricing := booking.Pricing{Prices: cfg.Booking.ClassPrices, Default: cfg.Booking.DefaultClassPrice}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	flightService := flights.NewFlightService(flightRepo, stale, events, cfg.Kafka.BookingTopic)
	passengerService := passengers.NewPassengerService(passengerRepo, stale)
	referenceService := reference.NewReferenceService(referenceRepo, passengerRepo, flightRepo, options, pricing)
	bookingService := booking.NewBookingService(
		bookingRepo,
		referenceRepo,
		userRepo,
		seatLocks,
		events,
		cfg.Kafka.BookingTopic,
		time.Duration(cfg.Booking.HoldTTLSeconds)*time.Second,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithPricing(pricing),
		booking.WithMaxSeats(cfg.Booking.MaxSeats),
	)
	authService := authsvc.NewAuthService(userRepo, tokens)
	dashboardService := dashboard.NewDashboardService(repository.NewStatsRepository(db))

	locale := i18n.NewContext(cfg.UI.Locale, cfg.UI.Theme)
	router := bootstrap.NewRouter(cfg, tokens, bootstrap.Handlers{
		Auth:       api.NewAuthHandler(authService, locale),
		Dashboard:  api.NewDashboardHandler(dashboardService, locale),
		Reference:  api.NewReferenceHandler(referenceService, locale),
		Flights:    api.NewFlightHandler(flightService, locale),
		Passengers: api.NewPassengerHandler(passengerService, locale),
		Bookings:   api.NewBookingHandler(bookingService, locale),
		Tickets:    api.NewTicketHandler(bookingService, ticketqr.NewGenerator(ticketqr.DefaultSize), locale),
	}, checks)

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
