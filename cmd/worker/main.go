package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightbooking/config"
	"github.com/Domenick1991/flightbooking/internal/email"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/logger"
	kafkaGo "github.com/segmentio/kafka-go"
)

// The worker consumes ticket notification events and sends confirmation
// emails. It shares no state with the API process; everything it needs is
// in the event payload.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		fallback := logger.New("info", "json", "flightbooking-worker")
		fallback.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, "flightbooking-worker")

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal().Msg("kafka brokers are required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender()

	log.Info().Str("topic", cfg.Kafka.NotificationsTopic).Msg("worker started")

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.TicketEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error().Err(err).Msg("decode event")
			return nil
		}
		if err := sender.Send(ctx, event); err != nil {
			log.Error().Err(err).Str("ticket", event.TicketNumber).Msg("send confirmation")
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("consumer stopped")
	}
}
