package cache

import (
	"context"
	"time"
)

// Cache is a JSON blob cache. Get unmarshals into value and reports
// whether the key was present.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
