package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/alkawthar/config"
	"github.com/Domenick1991/alkawthar/internal/cache"
	"github.com/Domenick1991/alkawthar/internal/email"
	"github.com/Domenick1991/alkawthar/internal/kafka"
	"github.com/Domenick1991/alkawthar/internal/logger"
	"github.com/Domenick1991/alkawthar/internal/notify"
	"github.com/Domenick1991/alkawthar/internal/repository"
	"github.com/Domenick1991/alkawthar/internal/storage"
	"github.com/Domenick1991/alkawthar/internal/ticketqr"
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
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.NotificationsTopic == "" {
		logrus.Fatal("worker needs kafka.brokers and kafka.notifications_topic")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("open database: %v", err)
	}
	defer db.Close()

	var opts []notify.Option
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.ReferenceCacheTTL)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("redis unavailable, remembering deliveries in memory")
		} else {
			opts = append(opts, notify.WithDeliveryLog(redisCache))
		}
	}

	handler := notify.NewHandler(
		repository.NewBookingRepository(db),
		repository.NewUserRepository(db),
		ticketqr.NewGenerator(ticketqr.DefaultSize),
		email.NewSender(cfg.Worker.From),
		cfg.Worker.QRDir,
		opts...,
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	logrus.WithField("topic", cfg.Kafka.NotificationsTopic).Info("worker started")
	if err := consumer.Consume(ctx, handler.Handle); err != nil {
		logrus.Fatalf("consumer stopped: %v", err)
	}
	logrus.Info("worker stopped")
}
