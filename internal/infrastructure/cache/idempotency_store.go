// Package cache provides the shared stores backing webhook deduplication.
package cache

import (
	"context"
	"time"
)

// IdempotencyStore remembers which callback or notification IDs were already
// handled. MarkProcessed is atomic: exactly one of two concurrent calls with
// the same ID gets true. Forget releases an ID so a sender retry can claim it
// again after the handler failed.
type IdempotencyStore interface {
	MarkProcessed(ctx context.Context, id string, ttl time.Duration) (bool, error)
	IsProcessed(ctx context.Context, id string) (bool, error)
	Forget(ctx context.Context, id string) error
	Close() error
}
