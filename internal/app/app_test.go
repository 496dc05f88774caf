package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/quilljot/quill/internal/constants"
	"github.com/quilljot/quill/internal/storage"
)

func setupTestApp(t *testing.T) *App {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), "quill.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return New(store)
}

func words(n int) string {
	w := make([]string, n)
	for i := range w {
		w[i] = "word"
	}
	return strings.Join(w, " ")
}

func TestSaveEntryEmptyTextAborts(t *testing.T) {
	a := setupTestApp(t)

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := a.SaveEntry(constants.ModePersonal, "p", text, time.Now())
		if !errors.Is(err, ErrEmptyEntry) {
			t.Errorf("SaveEntry(%q) error = %v, want ErrEmptyEntry", text, err)
		}
	}

	if got := len(a.Store.Entries().List()); got != 0 {
		t.Errorf("empty saves mutated the archive: %d entries", got)
	}
}

func TestSaveEntryBelowThresholdPersistsWithoutStreak(t *testing.T) {
	a := setupTestApp(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	result, err := a.SaveEntry(constants.ModePersonal, "p", words(24), now)
	if err != nil {
		t.Fatalf("SaveEntry() error = %v", err)
	}
	if !result.Persisted {
		t.Error("Persisted = false")
	}
	if result.Entry.WordCount != 24 {
		t.Errorf("WordCount = %d, want 24", result.Entry.WordCount)
	}
	if result.StreakCredit {
		t.Error("StreakCredit = true for a 24-word entry")
	}

	if ledger := a.Store.Streak().Ledger(); ledger.CurrentStreak != 0 {
		t.Errorf("streak ledger modified by a non-qualifying entry: %+v", ledger)
	}
	if got := len(a.Store.Entries().List()); got != 1 {
		t.Errorf("archive has %d entries, want 1", got)
	}
}

func TestSaveEntryAtThresholdUpdatesStreakOnce(t *testing.T) {
	a := setupTestApp(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	first, err := a.SaveEntry(constants.ModePersonal, "p", words(25), now)
	if err != nil {
		t.Fatalf("SaveEntry() error = %v", err)
	}
	if !first.StreakCredit || !first.StreakChanged {
		t.Errorf("first qualifying save: credit %v changed %v", first.StreakCredit, first.StreakChanged)
	}
	if first.Ledger.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", first.Ledger.CurrentStreak)
	}

	// A second qualifying save on the same date persists the entry but does
	// not move the ledger.
	second, err := a.SaveEntry(constants.ModePersonal, "p", words(30), now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("SaveEntry() error = %v", err)
	}
	if second.StreakChanged {
		t.Error("second same-day save changed the ledger")
	}
	if second.Ledger.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d after same-day save, want 1", second.Ledger.CurrentStreak)
	}

	if got := len(a.Store.Entries().List()); got != 2 {
		t.Errorf("archive has %d entries, want 2", got)
	}
}

func TestSaveEntryConsecutiveDays(t *testing.T) {
	a := setupTestApp(t)
	day1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	a.SaveEntry(constants.ModePersonal, "p", words(25), day1)
	result, _ := a.SaveEntry(constants.ModePersonal, "p", words(25), day1.AddDate(0, 0, 1))

	if result.Ledger.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", result.Ledger.CurrentStreak)
	}
}

func TestNextPromptNeverEmpty(t *testing.T) {
	a := setupTestApp(t)

	// Point the pool URL at nothing reachable; the fallback must cover.
	prefs := a.Store.Prefs().Get()
	prefs.PoolURL = "http://127.0.0.1:1/pool.json"
	a.Store.Prefs().Save(prefs)

	for _, mode := range []constants.Mode{constants.ModePersonal, constants.ModeProfessional} {
		got := a.NextPrompt(context.Background(), mode, time.Now())
		if got == "" {
			t.Errorf("NextPrompt(%s) returned an empty prompt", mode)
		}
	}
}

func TestNextPromptRecordsRecency(t *testing.T) {
	a := setupTestApp(t)
	prefs := a.Store.Prefs().Get()
	prefs.PoolURL = "http://127.0.0.1:1/pool.json"
	a.Store.Prefs().Save(prefs)

	got := a.NextPrompt(context.Background(), constants.ModePersonal, time.Now())

	recent := a.Store.Recency().Recent()
	if len(recent) == 0 || recent[0] != got {
		t.Errorf("Recent() = %v, want %q recorded first", recent, got)
	}
}

func TestNextPromptAvoidsRecent(t *testing.T) {
	a := setupTestApp(t)
	prefs := a.Store.Prefs().Get()
	prefs.PoolURL = "http://127.0.0.1:1/pool.json"
	a.Store.Prefs().Save(prefs)

	// The fallback pool offers more than 10 distinct candidates for any
	// fixed moment, so 10 consecutive picks must all differ.
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		p := a.NextPrompt(context.Background(), constants.ModePersonal, now)
		if seen[p] {
			t.Fatalf("prompt %q repeated within the recency window", p)
		}
		seen[p] = true
	}
}

func TestExportNudgeBelowThreshold(t *testing.T) {
	a := setupTestApp(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 9; i++ {
		a.Store.Entries().Add(constants.ModePersonal, "p", words(5), now)
	}
	if a.ExportNudge(now) {
		t.Error("ExportNudge fired below the entry threshold")
	}
}

func TestExportNudgeFiresOncePerCooldown(t *testing.T) {
	a := setupTestApp(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		a.Store.Entries().Add(constants.ModePersonal, "p", words(5), now)
	}

	if !a.ExportNudge(now) {
		t.Fatal("ExportNudge did not fire at the threshold")
	}
	if a.ExportNudge(now.Add(24 * time.Hour)) {
		t.Error("ExportNudge fired again inside the cooldown")
	}
	if !a.ExportNudge(now.Add(8 * 24 * time.Hour)) {
		t.Error("ExportNudge did not fire after the cooldown elapsed")
	}
}

func TestExportNudgeDismissed(t *testing.T) {
	a := setupTestApp(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		a.Store.Entries().Add(constants.ModePersonal, "p", words(5), now)
	}

	if !a.DismissExportNudge() {
		t.Fatal("DismissExportNudge failed")
	}
	if a.ExportNudge(now) {
		t.Error("ExportNudge fired after being dismissed")
	}
}
