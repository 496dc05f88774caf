package system

import (
	"fmt"
	"time"

	"github.com/quilljot/quill/internal/cli"
	"github.com/quilljot/quill/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storageReachable := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storageReachable = true
	}

	// Check 2: read/write round trip (only if storage is reachable)
	if storageReachable {
		if err := checkReadWrite(ctx); err != nil {
			fmt.Printf("❌ Read/write probe: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Read/write probe: OK\n")
		}
	} else {
		fmt.Printf("⊘ Read/write probe: SKIPPED (storage not reachable)\n")
	}

	// Check 3: preferences valid
	if storageReachable {
		if err := checkPreferences(ctx); err != nil {
			fmt.Printf("❌ Preferences: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Preferences: OK\n")
		}
	} else {
		fmt.Printf("⊘ Preferences: SKIPPED (storage not reachable)\n")
	}

	// Check 4: streak ledger consistent
	if storageReachable {
		if err := checkStreakLedger(ctx); err != nil {
			fmt.Printf("❌ Streak ledger: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Streak ledger: OK\n")
		}
	} else {
		fmt.Printf("⊘ Streak ledger: SKIPPED (storage not reachable)\n")
	}

	// Check 5: entry archive integrity
	if storageReachable {
		if err := checkEntriesIntegrity(ctx); err != nil {
			fmt.Printf("❌ Entry archive: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Entry archive: OK\n")
		}
	} else {
		fmt.Printf("⊘ Entry archive: SKIPPED (storage not reachable)\n")
	}

	// Check 6: pool cache freshness (warning only; the embedded pool
	// always works without it)
	if storageReachable {
		if err := checkPoolCache(ctx); err != nil {
			fmt.Printf("⚠ Prompt pool cache: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Prompt pool cache: OK\n")
		}
	} else {
		fmt.Printf("⊘ Prompt pool cache: SKIPPED (storage not reachable)\n")
	}

	// Check 7: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *cli.Context) error {
	if err := ctx.App.Store.Load(); err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	return nil
}

func checkReadWrite(ctx *cli.Context) error {
	if !ctx.App.Store.IsAvailable() {
		return fmt.Errorf("storage probe failed: reads and writes will silently fall back to defaults")
	}
	return nil
}

func checkPreferences(ctx *cli.Context) error {
	prefs := ctx.App.Store.Prefs().Get()

	if !utils.ValidateTimezone(prefs.Timezone) {
		return fmt.Errorf("configured timezone %q is not a valid IANA name", prefs.Timezone)
	}
	if prefs.SessionMinutes <= 0 {
		return fmt.Errorf("session minutes must be positive, got %d", prefs.SessionMinutes)
	}
	return nil
}

func checkStreakLedger(ctx *cli.Context) error {
	ledger := ctx.App.Store.Streak().Ledger()

	if ledger.CurrentStreak > ledger.LongestStreak {
		return fmt.Errorf("current streak (%d) exceeds longest streak (%d)", ledger.CurrentStreak, ledger.LongestStreak)
	}
	if ledger.CurrentStreak > len(ledger.WritingDays) {
		return fmt.Errorf("current streak (%d) exceeds recorded writing days (%d)", ledger.CurrentStreak, len(ledger.WritingDays))
	}
	for _, day := range ledger.WritingDays {
		if _, err := utils.ParseDay(day); err != nil {
			return fmt.Errorf("malformed writing day %q in ledger", day)
		}
	}
	return nil
}

func checkEntriesIntegrity(ctx *cli.Context) error {
	entries := ctx.App.Store.Entries().List()

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("entry with empty ID found")
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate entry ID found: %s", e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}

func checkPoolCache(ctx *cli.Context) error {
	_, fetchedAt, ok := ctx.App.Store.PoolCache().Get()
	if !ok {
		return fmt.Errorf("no cached prompt pool - run 'quill pool sync' to fetch fresh prompts")
	}
	if !ctx.App.Store.PoolCache().Fresh(time.Now()) {
		return fmt.Errorf("cached prompt pool is stale (fetched %s) - run 'quill pool sync'", fetchedAt.Local().Format(time.RFC1123))
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	return nil
}
