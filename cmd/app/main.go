package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daehyun-dev/skyreserve/config"
	"github.com/daehyun-dev/skyreserve/internal/bootstrap"
	"github.com/daehyun-dev/skyreserve/internal/cache"
	"github.com/daehyun-dev/skyreserve/internal/kafka"
	"github.com/daehyun-dev/skyreserve/internal/service/booking"
	"github.com/daehyun-dev/skyreserve/internal/service/flights"
	"github.com/daehyun-dev/skyreserve/internal/service/loyalty"
	"github.com/daehyun-dev/skyreserve/internal/service/users"
	"github.com/daehyun-dev/skyreserve/internal/store"
	"github.com/daehyun-dev/skyreserve/internal/store/postgres"
	"github.com/daehyun-dev/skyreserve/pkg/logger"
	"github.com/daehyun-dev/skyreserve/pkg/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog := logger.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var recordStore store.Store
	switch cfg.Store.Backend {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Store.Database.DSN())
		if err != nil {
			zlog.Fatal("connect postgres", "error", err)
		}
		defer pool.Close()
		recordStore = postgres.NewStore(pool)
	default:
		recordStore = store.NewMemoryStore(cfg.Store.DataDir, zlog)
	}

	if err := recordStore.LoadAll(ctx); err != nil {
		zlog.Fatal("load records", "error", err)
	}

	var searchCache flights.Cache
	if cfg.Redis.Enabled {
		searchCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.SearchCacheTTLSeconds)*time.Second)
	}

	var producer booking.Producer
	if cfg.Kafka.Enabled {
		kafkaProducer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer kafkaProducer.Close()
		producer = kafkaProducer
	}

	m := metrics.NewMetrics("skyreserve")

	flightService := flights.NewFlightService(recordStore, searchCache, zlog)
	ledger := loyalty.NewLedger(recordStore, cfg.Booking.MileageRate)
	bookingService := booking.NewBookingService(
		recordStore,
		flightService,
		ledger,
		producer,
		cfg.Kafka.ReservationsTopic,
		zlog,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithMetrics(m),
	)
	userService := users.NewUserService(recordStore, zlog)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService, userService); err != nil {
		zlog.Error("server error", "error", err)
	}

	saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := recordStore.SaveAll(saveCtx); err != nil {
		zlog.Error("save records", "error", err)
	}
}
