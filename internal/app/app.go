// Package app is the coordinator between the UI surfaces (CLI commands and
// the TUI) and the prompt engine / persistence layer. All mutable
// application state lives behind explicit operations here; nothing is shared
// through package globals.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/quilljot/quill/internal/constants"
	"github.com/quilljot/quill/internal/logger"
	"github.com/quilljot/quill/internal/models"
	"github.com/quilljot/quill/internal/prompt"
	"github.com/quilljot/quill/internal/storage"
	"github.com/quilljot/quill/internal/utils"
)

// ErrEmptyEntry is returned when a save is attempted with no written text.
// It aborts the action with no state mutation and is meant for the user.
var ErrEmptyEntry = errors.New("nothing written yet — the entry was not saved")

// App owns the stores and the prompt engine for one invocation.
type App struct {
	Store  storage.Provider
	Engine *prompt.Engine
}

// New creates the coordinator over an opened store.
func New(store storage.Provider) *App {
	return &App{
		Store:  store,
		Engine: prompt.New(),
	}
}

// ResolvePool produces a usable prompt pool: cache, then remote, then the
// embedded fallback. Never fails.
func (a *App) ResolvePool(ctx context.Context) (models.PromptPool, prompt.Source) {
	prefs := a.Store.Prefs().Get()
	return prompt.Resolve(ctx, a.Store.PoolCache(), prefs.PoolURL, time.Now())
}

// NextPrompt selects a prompt for the mode and records it in the recency
// cache. It always returns a non-empty string.
func (a *App) NextPrompt(ctx context.Context, mode constants.Mode, now time.Time) string {
	pool, source := a.ResolvePool(ctx)
	logger.Debug("Prompt pool resolved", "source", source)

	selected := a.Engine.Select(mode, now, pool, a.Store.Recency().Recent())
	a.Store.Recency().Record(selected)
	return selected
}

// SaveResult describes what a save did.
type SaveResult struct {
	Entry         models.Entry
	Persisted     bool
	StreakCredit  bool
	StreakChanged bool
	Ledger        models.StreakLedger
}

// SaveEntry persists a finished session. Empty (all-whitespace) text aborts
// with ErrEmptyEntry and no mutation. Any non-empty text is saved; streak
// credit additionally requires the minimum word count and is idempotent per
// calendar day.
func (a *App) SaveEntry(mode constants.Mode, promptText, text string, now time.Time) (SaveResult, error) {
	if strings.TrimSpace(text) == "" {
		return SaveResult{}, ErrEmptyEntry
	}

	entry, persisted := a.Store.Entries().Add(mode, promptText, text, now)
	result := SaveResult{Entry: entry, Persisted: persisted}

	if !entry.Qualifying() {
		result.Ledger = a.Store.Streak().Ledger()
		return result, nil
	}
	result.StreakCredit = true

	day := a.today(now)
	result.Ledger, result.StreakChanged = a.Store.Streak().RecordWrite(day)
	return result, nil
}

// Export-reminder pacing: the archive only lives on this machine, so once
// it grows past the threshold the user is nudged toward 'export --all', at
// most once per cooldown and never again once dismissed.
const (
	exportNudgeMinEntries = 10
	exportNudgeCooldown   = 7 * 24 * time.Hour
)

// ExportNudge reports whether to suggest a bulk export now, updating the
// reminder bookkeeping when it fires.
func (a *App) ExportNudge(now time.Time) bool {
	prefs := a.Store.Prefs().Get()
	if prefs.ExportOfferDismissed {
		return false
	}

	count, _ := a.Store.Entries().Totals()
	if count < exportNudgeMinEntries {
		return false
	}

	if prefs.LastExportOfferAt != "" {
		last, err := time.Parse(time.RFC3339, prefs.LastExportOfferAt)
		if err == nil && now.Sub(last) < exportNudgeCooldown {
			return false
		}
	}

	prefs.LastExportOfferAt = now.Format(time.RFC3339)
	a.Store.Prefs().Save(prefs)
	return true
}

// DismissExportNudge permanently silences the export reminder.
func (a *App) DismissExportNudge() bool {
	prefs := a.Store.Prefs().Get()
	prefs.ExportOfferDismissed = true
	return a.Store.Prefs().Save(prefs)
}

// today renders now as a calendar date in the user's configured timezone.
func (a *App) today(now time.Time) string {
	prefs := a.Store.Prefs().Get()
	loc, err := utils.LoadLocation(prefs.Timezone)
	if err != nil {
		logger.Warn("Invalid timezone preference, using local", "timezone", prefs.Timezone, "error", err)
		loc = time.Local
	}
	return now.In(loc).Format(constants.DateFormat)
}
