package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by KV.Get when nothing is stored under a key.
var ErrNotFound = errors.New("key not found")

// KV is a durable slot store: one opaque value per key, overwritten on write.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Options selects and configures a KV backend.
type Options struct {
	Driver    string
	Path      string
	RedisURL  string
	KeyPrefix string
}

// OpenKV opens the backend named by opts.Driver.
func OpenKV(ctx context.Context, opts Options) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverSQLite:
		path := opts.Path
		if path == "" {
			p, err := ResolveDBPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		db, err := Open(ctx, path)
		if err != nil {
			return nil, err
		}
		return NewSQLiteKV(db, opts.KeyPrefix), nil
	case DriverRedis:
		return NewRedisKV(ctx, opts.RedisURL, opts.KeyPrefix)
	case DriverMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
