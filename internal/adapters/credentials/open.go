package credentials

import (
	"context"
	"database/sql"
	"errors"
	"event-staffing-service/internal/ports"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options selects and configures a KeyValueStore backend.
type Options struct {
	Backend   string // sql | redis | file | memory
	DB        *sql.DB
	Driver    string
	FilePath  string
	RedisAddr string
}

// Open returns the configured backend and a close function for any
// connection it owns.
func Open(ctx context.Context, opts Options) (ports.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", "sql":
		if opts.DB == nil {
			return nil, nil, errors.New("open credential store: sql backend requires a database")
		}
		return NewSQLKeyValueStore(opts.DB, opts.Driver), noop, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("open credential store: ping redis %q: %w", opts.RedisAddr, err)
		}
		return NewRedisKeyValueStore(client), client.Close, nil

	case "file":
		if strings.TrimSpace(opts.FilePath) == "" {
			return nil, nil, errors.New("open credential store: file backend requires a path")
		}
		return NewFileKeyValueStore(opts.FilePath), noop, nil

	case "memory":
		return NewMemoryKeyValueStore(), noop, nil

	default:
		return nil, nil, fmt.Errorf("open credential store: unknown backend %q", opts.Backend)
	}
}
