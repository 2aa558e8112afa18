package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// ScorecardKey names the cache entry for a completed session's scorecard.
// Scorecards are immutable once written, so a long TTL is safe.
func ScorecardKey(sessionID string) string {
	return "interview:scorecard:" + sessionID
}
