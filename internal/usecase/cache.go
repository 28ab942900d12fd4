package usecase

import (
	"context"
	"time"
)

// Cache is the slice of the Redis adapter the usecases rely on. The
// adapter is best-effort, so cache errors are never surfaced to
// callers here either.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateEmployee(ctx context.Context, employeeID string) error
	InvalidateTrending(ctx context.Context) error
}

// NopCache satisfies Cache without storing anything; used when the
// container runs without Redis.
type NopCache struct{}

func (NopCache) GetJSON(context.Context, string, any) (bool, error)        { return false, nil }
func (NopCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (NopCache) InvalidateEmployee(context.Context, string) error          { return nil }
func (NopCache) InvalidateTrending(context.Context) error                  { return nil }
