package constants

import "time"

// Mode represents a writing context
type Mode string

// TimeCategory represents a time-of-day or day-of-week prompt category
type TimeCategory string

// Mood represents a mood prompt category
type Mood string

const (
	AppName           = "quill"
	DefaultConfigPath = "~/.config/quill/quill.db"
	Version           = "v0.3.0"

	// DateFormat is the standard calendar-date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MinWordsForStreak is the minimum word count for an entry to earn streak credit
	MinWordsForStreak = 25

	// MaxRecentPrompts is the capacity of the prompt recency cache
	MaxRecentPrompts = 10

	// DefaultSessionMinutes is the default length of a timed writing session
	DefaultSessionMinutes = 5

	// Pool fetch constants
	PoolFetchTimeout = 5 * time.Second
	PoolCacheMaxAge  = 24 * time.Hour
	DefaultPoolURL   = "https://raw.githubusercontent.com/quilljot/prompt-pool/main/pool.json"

	// TimeAwareShare is the fraction of a time-aware category mixed into the
	// candidate pool (first 30%, rounded down)
	TimeAwareShare = 0.3

	// MaxSeasonalPrompts is the cap on seasonal prompts mixed into the pool
	MaxSeasonalPrompts = 3

	// Mode constants
	ModePersonal     Mode = "personal"
	ModeProfessional Mode = "professional"

	// Time category constants, in classification priority order
	TimeMorning TimeCategory = "morning"
	TimeEvening TimeCategory = "evening"
	TimeMonday  TimeCategory = "monday"
	TimeFriday  TimeCategory = "friday"
	TimeWeekend TimeCategory = "weekend"

	// Mood constants
	MoodReflective Mood = "reflective"
	MoodGrateful   Mood = "grateful"
	MoodEnergized  Mood = "energized"
	MoodCreative   Mood = "creative"
	MoodStruggling Mood = "struggling"
)

// PoolCategory maps a mode to its prompt-pool category name
func (m Mode) PoolCategory() string {
	if m == ModeProfessional {
		return "career"
	}
	return "life"
}

// Valid reports whether m is one of the supported modes
func (m Mode) Valid() bool {
	return m == ModePersonal || m == ModeProfessional
}
