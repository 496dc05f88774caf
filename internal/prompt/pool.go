package prompt

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/quilljot/quill/internal/constants"
	"github.com/quilljot/quill/internal/logger"
	"github.com/quilljot/quill/internal/models"
)

// Source identifies where a resolved pool came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

// maxPoolBytes bounds how much of a remote document we are willing to read.
const maxPoolBytes = 1 << 20

// Cache is the slice of the persistence layer the resolver needs.
type Cache interface {
	Get() (models.PromptPool, time.Time, bool)
	Fresh(now time.Time) bool
	Put(pool models.PromptPool, fetchedAt time.Time) bool
}

// Validate checks the structural requirements on a pool document: both mode
// categories present and non-empty. Optional sections are not validated;
// missing ones simply contribute nothing to mixing.
func Validate(pool models.PromptPool) error {
	if len(pool.Life) == 0 {
		return fmt.Errorf("pool is missing the %q category", constants.ModePersonal.PoolCategory())
	}
	if len(pool.Career) == 0 {
		return fmt.Errorf("pool is missing the %q category", constants.ModeProfessional.PoolCategory())
	}
	return nil
}

// Fetch retrieves and validates the remote pool document. The request is
// bounded by PoolFetchTimeout; timeouts, non-2xx responses, and structural
// failures are all ordinary errors the caller recovers from by falling back.
func Fetch(ctx context.Context, url string) (models.PromptPool, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.PoolFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.PromptPool{}, fmt.Errorf("failed to build pool request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return models.PromptPool{}, fmt.Errorf("failed to fetch pool: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.PromptPool{}, fmt.Errorf("pool fetch returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxPoolBytes))
	if err != nil {
		return models.PromptPool{}, fmt.Errorf("failed to read pool response: %w", err)
	}

	var pool models.PromptPool
	if err := json.Unmarshal(raw, &pool); err != nil {
		return models.PromptPool{}, fmt.Errorf("failed to parse pool document: %w", err)
	}

	if err := Validate(pool); err != nil {
		return models.PromptPool{}, fmt.Errorf("pool document invalid: %w", err)
	}

	return pool, nil
}

// Resolve produces a usable pool no matter what: a fresh cached copy if one
// exists, otherwise a remote fetch (cached on success), otherwise whatever
// stale cache remains, and finally the embedded fallback. Degradation is
// logged, never surfaced.
func Resolve(ctx context.Context, cache Cache, url string, now time.Time) (models.PromptPool, Source) {
	if cache != nil && cache.Fresh(now) {
		if pool, _, ok := cache.Get(); ok {
			return pool, SourceCache
		}
	}

	pool, err := Fetch(ctx, url)
	if err == nil {
		if cache != nil {
			cache.Put(pool, now)
		}
		return pool, SourceRemote
	}
	logger.Warn("Prompt pool fetch failed, degrading", "url", url, "error", err)

	if cache != nil {
		if pool, _, ok := cache.Get(); ok {
			return pool, SourceCache
		}
	}

	return Fallback(), SourceFallback
}
