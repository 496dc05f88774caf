package entries

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/quilljot/quill/internal/app"
	"github.com/quilljot/quill/internal/cli"
	"github.com/quilljot/quill/internal/constants"
	"github.com/quilljot/quill/internal/storage"
)

func setupTestCtx(t *testing.T) *cli.Context {
	t.Helper()

	store := storage.New(filepath.Join(t.TempDir(), "quill.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	return &cli.Context{App: app.New(store)}
}

func addEntry(t *testing.T, ctx *cli.Context, prompt, text string) string {
	t.Helper()

	entry, ok := ctx.App.Store.Entries().Add(constants.ModePersonal, prompt, text, time.Now())
	if !ok {
		t.Fatalf("failed to add entry")
	}
	return entry.ID
}

func TestListCmd_Empty(t *testing.T) {
	ctx := setupTestCtx(t)

	cmd := &ListCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("list failed on empty archive: %v", err)
	}
}

func TestListCmd_WithEntries(t *testing.T) {
	ctx := setupTestCtx(t)
	addEntry(t, ctx, "What made you smile?", "the rain finally stopped")
	addEntry(t, ctx, "What did you learn?", "patience pays off")

	cmd := &ListCmd{Limit: 1}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("list failed: %v", err)
	}
}

func TestShowCmd_NotFound(t *testing.T) {
	ctx := setupTestCtx(t)

	cmd := &ShowCmd{ID: "deadbeef"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for unknown entry ID")
	}
}

func TestShowCmd_PrefixMatch(t *testing.T) {
	ctx := setupTestCtx(t)
	id := addEntry(t, ctx, "What did you notice today?", "a heron on the canal")

	cmd := &ShowCmd{ID: id[:8]}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("show by prefix failed: %v", err)
	}
}

func TestSearchCmd(t *testing.T) {
	ctx := setupTestCtx(t)
	addEntry(t, ctx, "What challenged you?", "debugging the flaky deploy pipeline")
	addEntry(t, ctx, "What are you grateful for?", "quiet mornings")

	cmd := &SearchCmd{Query: []string{"deploy", "pipeline"}}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("search failed: %v", err)
	}

	matches := ctx.App.Store.Entries().Search("deploy pipeline")
	if len(matches) != 1 {
		t.Errorf("expected 1 match, got %d", len(matches))
	}
}

func TestDeleteCmd_Yes(t *testing.T) {
	ctx := setupTestCtx(t)
	id := addEntry(t, ctx, "What surprised you?", "nothing, for once")

	cmd := &DeleteCmd{ID: id, Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, ok := ctx.App.Store.Entries().Get(id); ok {
		t.Error("entry still present after delete")
	}
}

func TestDeleteCmd_NotFound(t *testing.T) {
	ctx := setupTestCtx(t)

	cmd := &DeleteCmd{ID: "deadbeef", Yes: true}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for unknown entry ID")
	}
}

func TestClearCmd_Force(t *testing.T) {
	ctx := setupTestCtx(t)
	addEntry(t, ctx, "a", "one entry")
	addEntry(t, ctx, "b", "another entry")

	cmd := &ClearCmd{Force: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	if got := len(ctx.App.Store.Entries().List()); got != 0 {
		t.Errorf("expected empty archive after clear, got %d entries", got)
	}
}

func TestClearCmd_EmptyArchive(t *testing.T) {
	ctx := setupTestCtx(t)

	// No confirmation prompt should run when there is nothing to clear.
	cmd := &ClearCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("clear on empty archive failed: %v", err)
	}
}
