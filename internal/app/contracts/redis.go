package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	// GetDel returns the value and removes the key atomically, "" when the key is absent.
	GetDel(ctx context.Context, key string) (string, error)
}
