package models

// StreakLedger is the derived habit-tracking state.
//
// WritingDays holds each qualifying calendar date (YYYY-MM-DD) at most once.
// CurrentStreak is the length of the maximal run of consecutive dates ending
// at the most recently added date; LongestStreak never decreases.
type StreakLedger struct {
	CurrentStreak int      `json:"current_streak"`
	LongestStreak int      `json:"longest_streak"`
	LastWriteDate string   `json:"last_write_date,omitempty"`
	WritingDays   []string `json:"writing_days"`
}

// HasDay reports whether day is already recorded in the ledger
func (l StreakLedger) HasDay(day string) bool {
	for _, d := range l.WritingDays {
		if d == day {
			return true
		}
	}
	return false
}
