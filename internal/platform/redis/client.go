// Copyright (c) 2026 Bookly. All rights reserved.

// Package redis provides a managed Redis client for the Bookly application.
//
// Redis backs the ephemeral token stores (password reset and e-mail
// verification tokens) where native TTL support removes the need for a
// cleanup job.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout  = 5 * time.Second
	readTimeout  = 3 * time.Second
	writeTimeout = 3 * time.Second
	pingTimeout  = 2 * time.Second
)

// NewClient creates and validates a new Redis client from a URL of the form
// redis://[user:password@]host:port/db.
func NewClient(ctx context.Context, url string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.DialTimeout = dialTimeout
	options.ReadTimeout = readTimeout
	options.WriteTimeout = writeTimeout

	client := redis.NewClient(options)

	if err := Ping(ctx, client); err != nil {
		client.Close()
		return nil, err
	}

	logger.Info("redis connected", slog.String("addr", options.Addr), slog.Int("db", options.DB))

	return client, nil
}

// Ping verifies that the Redis connection is healthy.
func Ping(ctx context.Context, client *redis.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}
