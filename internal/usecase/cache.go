package usecase

import (
	"context"
	"time"
)

// ResponseCache is the cache surface the usecases need. The redis
// implementation degrades to a no-op when unavailable, so callers treat
// misses and bypasses identically.
type ResponseCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateCorpus(ctx context.Context) error
}
