package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightbooking/config"
	"github.com/Domenick1991/flightbooking/internal/bootstrap"
	"github.com/Domenick1991/flightbooking/internal/cache"
	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/logger"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/Domenick1991/flightbooking/internal/service/booking"
	"github.com/Domenick1991/flightbooking/internal/service/flights"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		fallback := logger.New("info", "json", "flightbooking-api")
		fallback.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, "flightbooking-api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var flightCache flights.FlightCache
	var seatLocks booking.Cache
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second)
		flightCache = redisCache
		seatLocks = redisCache
	}

	var producer booking.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		p := kafka.NewProducer(cfg.Kafka.Brokers)
		defer p.Close()
		producer = p
	}

	flightRepo := repository.NewFlightRepository()
	passengerRepo := repository.NewPassengerRepository()
	ticketRepo := repository.NewTicketRepository()

	if err := seedCatalog(ctx, flightRepo, cfg.Booking.FareCents); err != nil {
		log.Fatal().Err(err).Msg("seed catalog")
	}

	flightService := flights.NewFlightService(flightRepo, flightCache, log)
	bookingService := booking.NewBookingService(
		passengerRepo,
		flightRepo,
		ticketRepo,
		seatLocks,
		producer,
		cfg.Kafka.TicketTopic,
		log,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithSeatLockTTL(time.Duration(cfg.Booking.SeatLockTTLSeconds)*time.Second),
	)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService, log); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// seedCatalog loads the demo airports and flights served until a real
// catalog source exists.
func seedCatalog(ctx context.Context, repo repository.FlightRepository, fareCents int64) error {
	jfk := domain.Airport{Code: "JFK", Name: "John F Kennedy", City: "New York", Country: "USA"}
	lhr := domain.Airport{Code: "LHR", Name: "Heathrow", City: "London", Country: "UK"}
	cdg := domain.Airport{Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "France"}
	dxb := domain.Airport{Code: "DXB", Name: "Dubai International", City: "Dubai", Country: "UAE"}
	sin := domain.Airport{Code: "SIN", Name: "Changi", City: "Singapore", Country: "Singapore"}

	day := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	at := func(days, hour int) time.Time { return day.AddDate(0, 0, days).Add(time.Duration(hour) * time.Hour) }

	catalog := []*domain.Flight{
		domain.NewFlight("FL101", jfk, lhr, at(0, 10), at(0, 22), fareCents),
		domain.NewFlight("FL102", lhr, cdg, at(0, 14), at(0, 16), fareCents),
		domain.NewFlight("FL103", jfk, cdg, at(0, 11), at(0, 23), fareCents),
		domain.NewFlight("FL104", cdg, dxb, at(1, 9), at(1, 18), fareCents),
		domain.NewFlight("FL105", dxb, sin, at(1, 22), at(2, 10), fareCents),
		domain.NewFlight("FL106", lhr, dxb, at(0, 20), at(1, 6), fareCents),
	}

	for _, flight := range catalog {
		if err := repo.Add(ctx, flight); err != nil {
			return err
		}
	}
	return nil
}
