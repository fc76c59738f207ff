// Package cache provides a small TTL key-value abstraction backing the
// revocation registry and the session ledger. Two backends: in-process
// memory (development, tests) and Redis (shared store for production).
package cache

import (
	"context"
	"time"
)

type Client interface {
	// Get returns the value for key, or ErrNotFound if the key is absent
	// or past its TTL.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key. A zero ttl means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)

	Close() error
}

type Config struct {
	Driver   string // "memory" | "redis"
	Addr     string
	Password string
	DB       int
	Prefix   string
}

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "cache: key not found" }

func New(cfg Config) (Client, error) {
	switch cfg.Driver {
	case "redis":
		return NewRedis(cfg)
	default:
		return NewMemory(cfg.Prefix), nil
	}
}
