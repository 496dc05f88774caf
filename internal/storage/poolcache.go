package storage

import (
	"time"

	"github.com/quilljot/quill/internal/constants"
	"github.com/quilljot/quill/internal/models"
)

// cachedPool is the stored shape of a fetched prompt pool.
type cachedPool struct {
	Pool      models.PromptPool `json:"pool"`
	FetchedAt time.Time         `json:"fetched_at"`
}

// PoolCache persists the last successfully fetched prompt pool so offline
// runs can keep the remote content instead of dropping to the embedded
// fallback.
type PoolCache struct {
	kv *KV
}

// Get returns the cached pool and when it was fetched. The bool is false
// when nothing usable is cached.
func (s *PoolCache) Get() (models.PromptPool, time.Time, bool) {
	cached := Read(s.kv, keyPoolCache, cachedPool{})
	if cached.FetchedAt.IsZero() || len(cached.Pool.Life) == 0 || len(cached.Pool.Career) == 0 {
		return models.PromptPool{}, time.Time{}, false
	}
	return cached.Pool, cached.FetchedAt, true
}

// Fresh reports whether the cached pool was fetched within the max age.
func (s *PoolCache) Fresh(now time.Time) bool {
	_, fetchedAt, ok := s.Get()
	return ok && now.Sub(fetchedAt) < constants.PoolCacheMaxAge
}

// Put stores a fetched pool, reporting success.
func (s *PoolCache) Put(pool models.PromptPool, fetchedAt time.Time) bool {
	return Write(s.kv, keyPoolCache, cachedPool{Pool: pool, FetchedAt: fetchedAt})
}
