package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Booking BookingConfig `yaml:"booking"`
	Logging LoggingConfig `yaml:"logging"`
}

type HTTPConfig struct {
	Address    string `yaml:"address" env:"HTTP_ADDRESS"`
	SwaggerDir string `yaml:"swagger_dir" env:"SWAGGER_DIR"`
}

// RedisConfig enables the flight cache and distributed seat locks.
// An empty Addr runs the service without redis.
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers" env:"KAFKA_BROKERS" envSeparator:","`
	TicketTopic        string   `yaml:"ticket_topic" env:"KAFKA_TICKET_TOPIC"`
	NotificationsTopic string   `yaml:"notifications_topic" env:"KAFKA_NOTIFICATIONS_TOPIC"`
	GroupID            string   `yaml:"group_id" env:"KAFKA_GROUP_ID"`
}

type BookingConfig struct {
	FareCents              int64 `yaml:"fare_cents" env:"BOOKING_FARE_CENTS"`
	FlightsCacheTTLSeconds int   `yaml:"flights_cache_ttl_seconds" env:"BOOKING_FLIGHTS_CACHE_TTL_SECONDS"`
	SeatLockTTLSeconds     int   `yaml:"seat_lock_ttl_seconds" env:"BOOKING_SEAT_LOCK_TTL_SECONDS"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// LoadConfig reads the yaml file at path, then lets environment variables
// override individual values. A missing file is not an error; defaults and
// the environment still apply.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{Address: ":8080"},
		Kafka: KafkaConfig{
			TicketTopic:        "tickets",
			NotificationsTopic: "ticket-notifications",
			GroupID:            "flightbooking-worker",
		},
		Booking: BookingConfig{
			FareCents:              20000,
			FlightsCacheTTLSeconds: 60,
			SeatLockTTLSeconds:     30,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}
