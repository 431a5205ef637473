package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryRevocationRepo is the in-process fallback used when no redis address
// is configured. Entries expire on their own, same as the redis keys would.
type MemoryRevocationRepo struct {
	cache *cache.Cache
}

func NewMemoryRevocationRepo() *MemoryRevocationRepo {
	return &MemoryRevocationRepo{
		cache: cache.New(time.Hour, 10*time.Minute),
	}
}

func (r *MemoryRevocationRepo) Insert(ctx context.Context, tokenID, kind, subjectID string, ttl time.Duration) error {
	// ttl 0 means no expiry, matching the redis SET contract.
	if ttl == 0 {
		ttl = cache.NoExpiration
	}
	r.cache.Set(tokenID, kind+":"+subjectID, ttl)
	return nil
}

func (r *MemoryRevocationRepo) Contains(ctx context.Context, tokenID string) (bool, error) {
	_, found := r.cache.Get(tokenID)
	return found, nil
}
