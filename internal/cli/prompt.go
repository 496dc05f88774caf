package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/quilljot/quill/internal/constants"
	"github.com/quilljot/quill/internal/prompt"
)

type PromptCmd struct {
	Mode     string `help:"Writing mode: personal or professional." short:"m" default:"personal" enum:"personal,professional"`
	NoRecord bool   `help:"Do not record the prompt in the recency cache."`
}

func (c *PromptCmd) Run(ctx *Context) error {
	mode := constants.Mode(c.Mode)
	now := time.Now()

	pool, _ := ctx.App.ResolvePool(context.Background())
	selected := ctx.App.Engine.Select(mode, now, pool, ctx.App.Store.Recency().Recent())
	if !c.NoRecord {
		ctx.App.Store.Recency().Record(selected)
	}

	fmt.Println(selected)
	return nil
}

type HistoryCmd struct{}

func (c *HistoryCmd) Run(ctx *Context) error {
	return runHistoryTUI(ctx)
}

// PoolSyncCmd forces a refresh of the cached remote prompt pool.
type PoolSyncCmd struct{}

func (c *PoolSyncCmd) Run(ctx *Context) error {
	prefs := ctx.App.Store.Prefs().Get()

	pool, err := prompt.Fetch(context.Background(), prefs.PoolURL)
	if err != nil {
		return fmt.Errorf("pool sync failed (the embedded pool remains available): %w", err)
	}

	if !ctx.App.Store.PoolCache().Put(pool, time.Now()) {
		return fmt.Errorf("fetched the pool but could not cache it")
	}

	fmt.Printf("Synced prompt pool: %d life, %d career prompts.\n", len(pool.Life), len(pool.Career))
	return nil
}

// PoolStatusCmd reports where prompts are currently coming from.
type PoolStatusCmd struct{}

func (c *PoolStatusCmd) Run(ctx *Context) error {
	prefs := ctx.App.Store.Prefs().Get()
	fmt.Printf("Pool URL: %s\n", prefs.PoolURL)

	cached, fetchedAt, ok := ctx.App.Store.PoolCache().Get()
	if !ok {
		fmt.Println("Cache:    empty (prompts come from the embedded pool until a sync succeeds)")
		return nil
	}

	freshness := "stale"
	if ctx.App.Store.PoolCache().Fresh(time.Now()) {
		freshness = "fresh"
	}
	fmt.Printf("Cache:    %s, fetched %s\n", freshness, fetchedAt.Local().Format(time.RFC1123))
	fmt.Printf("Prompts:  %d life, %d career\n", len(cached.Life), len(cached.Career))
	if cached.Seasonal != nil && cached.Seasonal.Current != "" {
		fmt.Printf("Season:   %s\n", cached.Seasonal.Current)
	}
	return nil
}
