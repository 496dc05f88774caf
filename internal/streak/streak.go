// Package streak computes consecutive-day writing streaks from calendar
// dates. Dates are compared by pure calendar-day difference so that the
// time of day never affects continuity.
//
// Dates are plain YYYY-MM-DD strings produced in the user's configured
// timezone. A user crossing timezones or writing near local midnight may
// observe a skipped or doubled day; this is a known ambiguity and is left
// unnormalized on purpose.
package streak

import (
	"sort"

	"github.com/quilljot/quill/internal/models"
	"github.com/quilljot/quill/internal/utils"
)

// Apply records day into the ledger and returns the updated ledger.
//
// Recording is idempotent per calendar day: if day is already present the
// ledger is returned unchanged. Otherwise the day is inserted and the
// current streak recomputed as the length of the unbroken run of
// consecutive dates ending at day. LongestStreak never decreases.
func Apply(ledger models.StreakLedger, day string) models.StreakLedger {
	if ledger.HasDay(day) {
		return ledger
	}
	if _, err := utils.ParseDay(day); err != nil {
		// A malformed date can't participate in run arithmetic; leave the
		// ledger alone rather than corrupt it.
		return ledger
	}

	days := make([]string, 0, len(ledger.WritingDays)+1)
	for _, d := range ledger.WritingDays {
		if _, err := utils.ParseDay(d); err == nil {
			days = append(days, d)
		}
	}
	days = append(days, day)
	sort.Strings(days)

	current := trailingRun(days)

	longest := ledger.LongestStreak
	if current > longest {
		longest = current
	}

	return models.StreakLedger{
		CurrentStreak: current,
		LongestStreak: longest,
		LastWriteDate: days[len(days)-1],
		WritingDays:   days,
	}
}

// trailingRun walks backward from the newest date counting entries that are
// exactly one calendar day apart, stopping at the first gap.
func trailingRun(days []string) int {
	run := 1
	for i := len(days) - 1; i > 0; i-- {
		diff, err := utils.DaysBetween(days[i-1], days[i])
		if err != nil || diff != 1 {
			break
		}
		run++
	}
	return run
}
