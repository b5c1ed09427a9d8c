package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/antrhizom/stud-i-agency-check/config"
)

// Client kapselt die Redis-Verbindung für Token-Blacklist und Rate-Limiting
type Client struct {
	rdb *redis.Client
}

// NewClient baut die Verbindung auf und prüft sie mit einem Ping
func NewClient(cfg *config.RedisConfig) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis-verbindung fehlgeschlagen: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// BlacklistToken sperrt ein Token (per jti) bis zu seinem Ablaufzeitpunkt
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // bereits abgelaufen, keine Sperre nötig
	}
	return c.rdb.Set(ctx, "blacklist:"+jti, "1", ttl).Err()
}

// IsTokenBlacklisted prüft ob ein Token gesperrt wurde
func (c *Client) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, "blacklist:"+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CheckRateLimit zählt Zugriffe pro Schlüssel im Zeitfenster.
// Liefert false sobald limit überschritten ist.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := "ratelimit:" + key

	count, err := c.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, redisKey, window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(limit), nil
}

// Close schliesst die Verbindung
func (c *Client) Close() error {
	return c.rdb.Close()
}
