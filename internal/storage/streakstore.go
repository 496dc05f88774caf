package storage

import (
	"github.com/quilljot/quill/internal/models"
	"github.com/quilljot/quill/internal/streak"
)

// StreakStore owns the streak ledger and is the only mutator of it.
type StreakStore struct {
	kv *KV
}

// Ledger returns the current streak ledger.
func (s *StreakStore) Ledger() models.StreakLedger {
	return Read(s.kv, keyStreak, models.StreakLedger{})
}

// RecordWrite credits the given calendar day (YYYY-MM-DD) to the streak.
// Recording is idempotent per day: a second qualifying write on the same
// date changes nothing. The returned bool reports whether the ledger
// changed.
func (s *StreakStore) RecordWrite(day string) (models.StreakLedger, bool) {
	ledger := s.Ledger()
	if ledger.HasDay(day) {
		return ledger, false
	}

	updated := streak.Apply(ledger, day)
	Write(s.kv, keyStreak, updated)
	return updated, true
}
