// Package prompt selects writing prompts from a categorized pool, biased by
// mode, time of day, mood band, season, and recent-use avoidance.
package prompt

import (
	"math/rand"
	"time"

	"github.com/quilljot/quill/internal/constants"
	"github.com/quilljot/quill/internal/models"
)

// Engine picks one prompt per request. It always returns a usable string,
// even with an empty or malformed pool.
type Engine struct {
	rng *rand.Rand
}

// New creates an engine seeded from the clock.
func New() *Engine {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates an engine with an explicit randomness source, which
// makes selection reproducible in tests.
func NewWithSource(src rand.Source) *Engine {
	return &Engine{rng: rand.New(src)}
}

// Select assembles the candidate multiset for the request and picks
// uniformly from it. Prompts contributed by several mixing dimensions appear
// multiple times and are proportionally more likely; that skew is the
// weighting scheme, not an accident.
func (e *Engine) Select(mode constants.Mode, now time.Time, pool models.PromptPool, recent []string) string {
	candidates := Candidates(mode, now, pool, recent)
	return candidates[e.rng.Intn(len(candidates))]
}

// Candidates builds the selection multiset for a request. Each mixing step
// adds to the working set; nothing replaces prior content. The result is
// never empty.
func Candidates(mode constants.Mode, now time.Time, pool models.PromptPool, recent []string) []string {
	fallback := fallbackForMode(mode)

	// Base set: the mode's own category, or the embedded list when the pool
	// lacks it.
	base := modeCategory(pool, mode)
	if len(base) == 0 {
		base = fallback
	}
	candidates := append([]string(nil), base...)

	// Time-aware mixing: at most one category, first 30% of its prompts.
	if cat := classifyTime(now); cat != "" {
		timePrompts := pool.TimeAware[string(cat)]
		if n := int(float64(len(timePrompts)) * constants.TimeAwareShare); n > 0 {
			candidates = append(candidates, timePrompts[:n]...)
		}
	}

	// Mood-aware mixing: blends depend on mode and hour band. Missing mood
	// categories contribute nothing.
	for _, blend := range moodBlend(mode, now) {
		candidates = append(candidates, take(pool.Moods[string(blend.mood)], blend.count)...)
	}

	// Seasonal mixing.
	candidates = append(candidates, take(pool.CurrentSeasonPrompts(), constants.MaxSeasonalPrompts)...)

	// Recency filter: drop anything shown recently, unless that would empty
	// the set entirely.
	if filtered := withoutRecent(candidates, recent); len(filtered) > 0 {
		candidates = filtered
	}

	if len(candidates) == 0 {
		candidates = append([]string(nil), fallback...)
	}

	return candidates
}

// classifyTime maps a moment to at most one time-aware category. Hour-based
// categories win over weekday-based ones, so a Monday morning is "morning".
func classifyTime(now time.Time) constants.TimeCategory {
	hour := now.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return constants.TimeMorning
	case hour >= 18 || hour < 5:
		return constants.TimeEvening
	}
	switch now.Weekday() {
	case time.Monday:
		return constants.TimeMonday
	case time.Friday:
		return constants.TimeFriday
	case time.Saturday, time.Sunday:
		return constants.TimeWeekend
	}
	return ""
}

type moodShare struct {
	mood  constants.Mood
	count int
}

// moodBlend returns the mood sub-blend for the mode and hour band.
func moodBlend(mode constants.Mode, now time.Time) []moodShare {
	hour := now.Hour()

	if mode == constants.ModeProfessional {
		blend := []moodShare{{constants.MoodEnergized, 3}}
		if now.Weekday() == time.Monday {
			blend = append(blend, moodShare{constants.MoodStruggling, 2})
		}
		return blend
	}

	switch {
	case hour >= 18 || hour < 6:
		return []moodShare{{constants.MoodReflective, 3}, {constants.MoodGrateful, 3}}
	case hour >= 6 && hour < 12:
		return []moodShare{{constants.MoodEnergized, 3}, {constants.MoodCreative, 2}}
	default:
		return []moodShare{{constants.MoodReflective, 2}, {constants.MoodCreative, 2}}
	}
}

func modeCategory(pool models.PromptPool, mode constants.Mode) []string {
	if mode == constants.ModeProfessional {
		return pool.Career
	}
	return pool.Life
}

func fallbackForMode(mode constants.Mode) []string {
	return modeCategory(Fallback(), mode)
}

func take(prompts []string, n int) []string {
	if n > len(prompts) {
		n = len(prompts)
	}
	return prompts[:n]
}

func withoutRecent(candidates, recent []string) []string {
	if len(recent) == 0 {
		return candidates
	}

	seen := make(map[string]struct{}, len(recent))
	for _, r := range recent {
		seen[r] = struct{}{}
	}

	var kept []string
	for _, c := range candidates {
		if _, ok := seen[c]; !ok {
			kept = append(kept, c)
		}
	}
	return kept
}
