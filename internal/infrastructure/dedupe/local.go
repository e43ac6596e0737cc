package dedupe

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// Local is the single-process variant used when Redis is not configured.
type Local struct {
	claims *cache.Cache
}

func NewLocal() *Local {
	return &Local{claims: cache.New(cache.NoExpiration, time.Minute)}
}

func (l *Local) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	// Add fails when the key exists and has not expired.
	if err := l.claims.Add(key, struct{}{}, ttl); err != nil {
		return false, nil //nolint:nilerr
	}

	return true, nil
}

func (l *Local) Release(_ context.Context, key string) error {
	l.claims.Delete(key)

	return nil
}
