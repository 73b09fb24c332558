package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/flightbooking/config"
	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache caches the flight catalog and holds short-lived seat locks so
// that several service instances serialize bookings for the same seat.
type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.FlightSummary, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.FlightSummary
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.FlightSummary) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

// AcquireSeatLock claims the seat for the duration of one booking attempt.
// It returns false when another attempt already holds the lock.
func (c *RedisCache) AcquireSeatLock(ctx context.Context, flightNumber string, seat domain.SeatID, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, seatLockKey(flightNumber, seat), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseSeatLock(ctx context.Context, flightNumber string, seat domain.SeatID) error {
	return c.client.Del(ctx, seatLockKey(flightNumber, seat)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func seatLockKey(flightNumber string, seat domain.SeatID) string {
	return fmt.Sprintf("lock:flight:%s:seat:%s", flightNumber, seat)
}
