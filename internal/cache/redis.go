package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/duchauuuuu/flight-backend/config"
	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
	searchTTL  time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL, searchTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
		searchTTL:  searchTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	return c.getFlights(ctx, flightsKey())
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	return c.setFlights(ctx, flightsKey(), flights, c.flightsTTL)
}

// GetSearch returns the cached result for a search key, or nil on a miss.
func (c *RedisCache) GetSearch(ctx context.Context, key string) ([]domain.Flight, error) {
	return c.getFlights(ctx, key)
}

func (c *RedisCache) SetSearch(ctx context.Context, key string, flights []domain.Flight) error {
	return c.setFlights(ctx, key, flights, c.searchTTL)
}

func (c *RedisCache) getFlights(ctx context.Context, key string) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) setFlights(ctx context.Context, key string, flights []domain.Flight, ttl time.Duration) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

func flightsKey() string {
	return "cache:flights"
}

// SearchKey builds a stable cache key from the already-normalized search
// inputs.
func SearchKey(from, to, airline string, depart *time.Time, cabin domain.CabinClass, passengers int) string {
	day := ""
	if depart != nil {
		day = depart.UTC().Format("2006-01-02")
	}
	return fmt.Sprintf("cache:search:%s:%s:%s:%s:%s:%d", from, to, airline, day, cabin, passengers)
}
