package prompt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quilljot/quill/internal/models"
)

// fakeCache is an in-memory prompt.Cache.
type fakeCache struct {
	pool      models.PromptPool
	fetchedAt time.Time
	has       bool
	puts      int
}

func (c *fakeCache) Get() (models.PromptPool, time.Time, bool) {
	return c.pool, c.fetchedAt, c.has
}

func (c *fakeCache) Fresh(now time.Time) bool {
	return c.has && now.Sub(c.fetchedAt) < 24*time.Hour
}

func (c *fakeCache) Put(pool models.PromptPool, fetchedAt time.Time) bool {
	c.pool, c.fetchedAt, c.has = pool, fetchedAt, true
	c.puts++
	return true
}

const validPoolDoc = `{
	"life": ["l1", "l2"],
	"career": ["c1", "c2"],
	"timeAware": {"morning": ["m1"]},
	"moods": {"reflective": ["r1"]},
	"seasonal": {"current": "spring", "prompts": {"spring": ["s1"]}}
}`

func TestFetch(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr bool
	}{
		{
			name: "valid document",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(validPoolDoc))
			},
			wantErr: false,
		},
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "gone", http.StatusNotFound)
			},
			wantErr: true,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"life": [`))
			},
			wantErr: true,
		},
		{
			name: "missing career category",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"life": ["l1"]}`))
			},
			wantErr: true,
		},
		{
			name: "empty mode category",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"life": ["l1"], "career": []}`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			pool, err := Fetch(context.Background(), srv.URL)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Fetch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				if len(pool.Life) != 2 || len(pool.Career) != 2 {
					t.Errorf("Fetch() pool = %+v", pool)
				}
				if pool.Seasonal == nil || pool.Seasonal.Current != "spring" {
					t.Errorf("Fetch() lost the seasonal section: %+v", pool.Seasonal)
				}
			}
		})
	}
}

func TestFetchUnreachableHost(t *testing.T) {
	// A closed server gives an immediate connection error.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := Fetch(context.Background(), url); err == nil {
		t.Error("Fetch() succeeded against a closed server")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		pool    models.PromptPool
		wantErr bool
	}{
		{
			name:    "both categories present",
			pool:    models.PromptPool{Life: []string{"l"}, Career: []string{"c"}},
			wantErr: false,
		},
		{
			name:    "missing life",
			pool:    models.PromptPool{Career: []string{"c"}},
			wantErr: true,
		},
		{
			name:    "missing career",
			pool:    models.PromptPool{Life: []string{"l"}},
			wantErr: true,
		},
		{
			name:    "optional sections absent is fine",
			pool:    models.PromptPool{Life: []string{"l"}, Career: []string{"c"}, TimeAware: nil, Moods: nil},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.pool); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolvePrefersFreshCache(t *testing.T) {
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		w.Write([]byte(validPoolDoc))
	}))
	defer srv.Close()

	now := time.Now()
	cache := &fakeCache{
		pool:      models.PromptPool{Life: []string{"cached"}, Career: []string{"cached"}},
		fetchedAt: now.Add(-time.Hour),
		has:       true,
	}

	pool, source := Resolve(context.Background(), cache, srv.URL, now)
	if source != SourceCache {
		t.Errorf("source = %s, want cache", source)
	}
	if fetches != 0 {
		t.Errorf("Resolve() fetched remotely despite a fresh cache")
	}
	if pool.Life[0] != "cached" {
		t.Errorf("pool = %+v, want cached copy", pool)
	}
}

func TestResolveFetchesAndCaches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(validPoolDoc))
	}))
	defer srv.Close()

	cache := &fakeCache{}
	pool, source := Resolve(context.Background(), cache, srv.URL, time.Now())
	if source != SourceRemote {
		t.Errorf("source = %s, want remote", source)
	}
	if cache.puts != 1 {
		t.Errorf("Resolve() did not cache the fetched pool (puts = %d)", cache.puts)
	}
	if len(pool.Life) != 2 {
		t.Errorf("pool = %+v", pool)
	}
}

func TestResolveStaleCacheBeatsFallback(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	now := time.Now()
	cache := &fakeCache{
		pool:      models.PromptPool{Life: []string{"stale"}, Career: []string{"stale"}},
		fetchedAt: now.Add(-48 * time.Hour),
		has:       true,
	}

	pool, source := Resolve(context.Background(), cache, srv.URL, now)
	if source != SourceCache {
		t.Errorf("source = %s, want stale cache over fallback", source)
	}
	if pool.Life[0] != "stale" {
		t.Errorf("pool = %+v", pool)
	}
}

func TestResolveFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	pool, source := Resolve(context.Background(), &fakeCache{}, srv.URL, time.Now())
	if source != SourceFallback {
		t.Errorf("source = %s, want fallback", source)
	}
	if err := Validate(pool); err != nil {
		t.Errorf("fallback pool invalid: %v", err)
	}
}
