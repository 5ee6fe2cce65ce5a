package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reqmaster-ai/reqmaster-backend/config"
	"github.com/reqmaster-ai/reqmaster-backend/internal/recordstore"
)

// OpenStore builds the record store the configured backend names.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (recordstore.Store, error) {
	switch cfg.Backend {
	case "memory":
		return recordstore.NewMemory(), nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return recordstore.NewRedis(client, cfg.Namespace), nil

	case "postgres":
		return recordstore.OpenPostgres(ctx, cfg.PostgresDSN)
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
