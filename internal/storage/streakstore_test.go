package storage

import "testing"

func TestStreakStoreRecordWrite(t *testing.T) {
	store := setupTestStore(t)

	ledger, changed := store.Streak().RecordWrite("2025-01-01")
	if !changed {
		t.Fatal("RecordWrite() reported no change for a first write")
	}
	if ledger.CurrentStreak != 1 || ledger.LongestStreak != 1 {
		t.Errorf("ledger after first write = %+v", ledger)
	}

	ledger, changed = store.Streak().RecordWrite("2025-01-02")
	if !changed || ledger.CurrentStreak != 2 {
		t.Errorf("ledger after consecutive write = %+v, changed %v", ledger, changed)
	}
}

func TestStreakStoreIdempotentPerDay(t *testing.T) {
	store := setupTestStore(t)

	store.Streak().RecordWrite("2025-01-01")
	before := store.Streak().Ledger()

	after, changed := store.Streak().RecordWrite("2025-01-01")
	if changed {
		t.Error("RecordWrite() reported a change for an already-credited day")
	}
	if after.CurrentStreak != before.CurrentStreak || len(after.WritingDays) != len(before.WritingDays) {
		t.Errorf("ledger mutated by same-day write: before %+v after %+v", before, after)
	}
}

func TestStreakStorePersists(t *testing.T) {
	store := setupTestStore(t)

	store.Streak().RecordWrite("2025-01-01")
	store.Streak().RecordWrite("2025-01-02")

	// A fresh store over the same backend sees the same ledger.
	ledger := store.Streak().Ledger()
	if ledger.CurrentStreak != 2 {
		t.Errorf("Ledger().CurrentStreak = %d, want 2", ledger.CurrentStreak)
	}
	if ledger.LastWriteDate != "2025-01-02" {
		t.Errorf("LastWriteDate = %q, want 2025-01-02", ledger.LastWriteDate)
	}
}
